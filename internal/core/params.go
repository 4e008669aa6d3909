package core

// Parameter describes a single value reported by a generator for display.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of reported values.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the parameter with the given key, if present.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// Lines flattens the snapshot into "Label: Value" lines, group by group.
func (s ParameterSnapshot) Lines() []string {
	var lines []string
	for _, g := range s.Groups {
		for _, p := range g.Params {
			lines = append(lines, p.Label+": "+p.Value)
		}
	}
	return lines
}

package app

// Action is a shell-independent user request.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionNewMaze
	ActionSpeedUp
	ActionSlowDown
)

// Apply performs a on the session and reports whether the shell should keep
// running.
func (s *Session) Apply(a Action) bool {
	switch a {
	case ActionQuit:
		return false
	case ActionNewMaze:
		s.NewMaze()
	case ActionSpeedUp:
		s.SpeedUp()
	case ActionSlowDown:
		s.SlowDown()
	}
	return true
}

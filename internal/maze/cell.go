package maze

// Flags is the per-cell bitset of carved passages and the visited marker.
type Flags uint8

const (
	PathNorth Flags = 1 << iota
	PathEast
	PathSouth
	PathWest
	Visited
)

// Has reports whether every bit in f is set.
func (c Flags) Has(f Flags) bool { return c&f == f }

// Direction names one of the four grid neighbors.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the neighbor directions in scan order.
var Directions = [4]Direction{North, East, South, West}

var directionNames = [4]string{"north", "east", "south", "west"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "invalid"
}

// Delta returns the coordinate offset of the neighbor in direction d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// Path returns the passage flag for d.
func (d Direction) Path() Flags { return PathNorth << d }

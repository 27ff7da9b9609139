package component

// Shape selects how the renderer draws an entity.
type Shape uint8

const (
	ShapeTriangle Shape = iota
	ShapeCircle
	ShapeLine
)

func (s Shape) String() string {
	switch s {
	case ShapeTriangle:
		return "triangle"
	case ShapeCircle:
		return "circle"
	case ShapeLine:
		return "line"
	}
	return "unknown"
}

// Render holds visual parameters. Rotation (radians) is also the facing
// used by the input system to steer thrust and aim bullets.
type Render struct {
	Shape    Shape
	Size     float64
	Color    string
	Rotation float64
}

func (Render) Tag() Tag { return TagRender }

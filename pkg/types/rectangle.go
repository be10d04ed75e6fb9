package types

import "fmt"

// Rectangle is an axis-aligned rectangle with strictly positive sides.
// It stands apart from the library and is not stored anywhere.
type Rectangle struct {
	ID     int
	Width  float64
	Height float64
}

type rectangleFields struct {
	Width  float64 `validate:"gt=0"`
	Height float64 `validate:"gt=0"`
}

// NewRectangle returns a Rectangle with the next ID from seq, or a
// *ValidationError if width or height is not greater than zero.
func NewRectangle(seq *Sequence, width, height float64) (*Rectangle, error) {
	if err := checkFields("rectangle", rectangleFields{Width: width, Height: height}); err != nil {
		return nil, err
	}
	return &Rectangle{ID: seq.Next(), Width: width, Height: height}, nil
}

// Area returns Width × Height.
func (r *Rectangle) Area() float64 {
	return r.Width * r.Height
}

// Perimeter returns 2 × (Width + Height).
func (r *Rectangle) Perimeter() float64 {
	return 2 * (r.Width + r.Height)
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("Rectangle{id=%d, width=%g, height=%g}", r.ID, r.Width, r.Height)
}

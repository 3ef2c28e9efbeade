package sketch_test

import (
	"fmt"

	"github.com/matzehuels/miniworld/pkg/sketch"
)

func ExampleSurface() {
	s := sketch.NewSurface(200, 100, sketch.DefaultPen)

	s.Begin(sketch.Pt(10, 10))
	s.Extend(sketch.Pt(60, 40))
	s.Extend(sketch.Pt(120, 20))
	s.End()
	fmt.Println(s.State(), s.Segments(), s.Blank())

	s.Clear()
	fmt.Println(s.State(), s.Segments(), s.Blank())
	// Output:
	// idle 2 false
	// idle 0 true
}

// Package sketch implements the freehand drawing surface of drawable pages.
//
// A [Surface] turns pointer input into strokes on a raster [Buffer]:
//
//	s := sketch.NewSurface(320, 200, sketch.DefaultPen)
//	s.Begin(sketch.Pt(10, 10))  // pointer down: Idle -> Drawing
//	s.Extend(sketch.Pt(40, 25)) // pointer move: one segment
//	s.Extend(sketch.Pt(60, 80)) // another, connected to the previous one
//	s.End()                     // pointer up: Drawing -> Idle
//	s.Clear()                   // erase everything, state unchanged
//
// Moves that arrive while Idle are ignored. Only pixels are kept: once a
// stroke ends there is no vector record of it, and a cleared surface cannot
// be restored.
//
// The buffer is rendered with github.com/gogpu/gg, whose immediate-mode API
// mirrors an HTML canvas. Its size is fixed when the surface is created.
package sketch

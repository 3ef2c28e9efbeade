// Package nav drives page-by-page reading of a book.
//
// A [Navigator] owns a cursor into a [book.Store] and renders the current
// page into a [Display]. The display is an interface so the same navigator
// runs behind the terminal reader and behind test fakes.
//
//	n := nav.New(store, display)
//	n.Render()     // page 1, "1 / 45", previous disabled
//	n.GoNext()     // page 2, "2 / 45"
//	n.GoPrevious() // page 1 again
//
// GoNext and GoPrevious are guarded: at the last and first page they do
// nothing. When the displayed page is drawable the navigator attaches a
// fresh [sketch.Surface] sized from [Display.CanvasSize]; navigating away
// discards it, so coming back shows a blank canvas.
//
// # Events
//
// Front ends translate their input into [Event] values and hand them to
// [Navigator.Dispatch]. Pointer releases end the stroke wherever they
// happen, not only over the canvas, so dragging off the canvas and
// releasing still finishes the line.
package nav

// Package pkg provides the libraries behind the miniworld picture-book reader.
//
// # Overview
//
// Miniworld is "Isabella y el Mundo en Miniatura", a children's book about
// looking at everyday things through a microscope. Readers page through
// chapters, answer quizzes and draw what they discover on canvas pages.
// The pkg directory is organized into three areas:
//
//  1. Content - the page store and the catalog it is built from ([book])
//  2. Interaction - the reading position and drawing surfaces ([nav], [sketch])
//  3. Presentation - Markdown, terminal and Graphviz output ([render], [outline])
//
// # Architecture
//
// The data flow through a reading session:
//
//	TOML catalog (embedded or --book)
//	         ↓
//	    [book] package (validate + build an immutable page store)
//	         ↓
//	    [nav] package (cursor, render into a Display, route input events)
//	         ↓
//	    [sketch] package (per-visit drawing surface on canvas pages)
//
// # Quick Start
//
// Open the built-in book and move through it with any [nav.Display]:
//
//	import (
//	    "github.com/matzehuels/miniworld/pkg/book"
//	    "github.com/matzehuels/miniworld/pkg/nav"
//	    "github.com/matzehuels/miniworld/pkg/sketch"
//	)
//
//	n := nav.New(book.Default(), display)
//	n.Render()                               // cover
//	n.GoNext()                               // first intro section
//	n.PointerDown(sketch.Pt(10, 10))         // ignored: no canvas here
//
// # Main Packages
//
// [book] - Pages, content blocks and the Store. Pages are immutable and a
// store is never empty. The built-in catalog lives in book/content.
//
// [nav] - The Navigator: one cursor clamped to the book, a Display it
// renders into and declarative bindings from input actions to handlers.
//
// [sketch] - Freehand drawing. A Surface runs the idle/drawing pointer
// state machine over a raster Buffer drawn with gogpu/gg.
//
// [render] - Markdown and glamour terminal rendering of pages.
//
// [outline] - The page sequence as a Graphviz diagram.
//
// ## Infrastructure
//
// [errors] - Structured errors with codes such as OUT_OF_RANGE and
// INVALID_CONTENT, plus content validators.
//
// [observability] - No-op-by-default hooks for navigation, drawing and
// export events.
//
// [cache] - File cache for rendered artifacts.
//
// [buildinfo] - Version information set at build time.
//
// [book]: https://pkg.go.dev/github.com/matzehuels/miniworld/pkg/book
// [nav]: https://pkg.go.dev/github.com/matzehuels/miniworld/pkg/nav
// [nav.Display]: https://pkg.go.dev/github.com/matzehuels/miniworld/pkg/nav#Display
// [sketch]: https://pkg.go.dev/github.com/matzehuels/miniworld/pkg/sketch
// [render]: https://pkg.go.dev/github.com/matzehuels/miniworld/pkg/render
// [outline]: https://pkg.go.dev/github.com/matzehuels/miniworld/pkg/render/outline
// [errors]: https://pkg.go.dev/github.com/matzehuels/miniworld/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/miniworld/pkg/observability
// [cache]: https://pkg.go.dev/github.com/matzehuels/miniworld/pkg/cache
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/miniworld/pkg/buildinfo
package pkg

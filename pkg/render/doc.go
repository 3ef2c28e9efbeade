// Package render is the presentation layer for book pages.
//
// # Overview
//
// Pages hold structured content ([book.Block] values); this package turns
// that content into something a reader can look at:
//
//   - [Markdown]: one page as CommonMark text
//   - [WriteBook]: the whole book as a single Markdown document
//   - [Terminal]: styled terminal text via glamour
//
// The [outline] subpackage draws the page sequence as a Graphviz diagram.
//
// Drawing canvases are interactive and have no static form. Markdown
// output shows a placeholder line in their place, which [WithoutCanvas]
// drops for front ends that draw the canvas themselves.
//
// [outline]: github.com/matzehuels/miniworld/pkg/render/outline
package render

// Package outline draws a book's page sequence as a Graphviz diagram.
//
// Every page becomes a node labelled with its position and title, linked
// to the next page. Chapter pages (header, challenges, games) are grouped
// in a cluster, and drawable pages are filled so the canvases stand out:
//
//	dot := outline.ToDOT(store, outline.Options{})
//	svg, err := outline.RenderSVG(ctx, dot)
package outline

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/miniworld/pkg/book"
)

// Options configures outline rendering.
type Options struct {
	// Detailed adds the page kind to every node label.
	Detailed bool
}

// ToDOT converts a book to Graphviz DOT format.
func ToDOT(s *book.Store, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph book {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.3;\n")
	buf.WriteString("\n")

	inCluster := false
	for i, p := range s.All() {
		if p.Kind() == book.KindChapter {
			if inCluster {
				buf.WriteString("  }\n")
			}
			fmt.Fprintf(&buf, "  subgraph cluster_%d {\n    label=%q;\n    style=\"rounded,dashed\";\n", i, p.Title())
			inCluster = true
		}

		indent := "  "
		if inCluster {
			indent = "    "
		}
		fmt.Fprintf(&buf, "%s%s [%s];\n", indent, nodeID(i), strings.Join(fmtAttrs(i, p, opts.Detailed), ", "))

		if inCluster && p.Kind() == book.KindGames {
			buf.WriteString("  }\n")
			inCluster = false
		}
	}
	if inCluster {
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	for i := 1; i < s.Len(); i++ {
		fmt.Fprintf(&buf, "  %s -> %s;\n", nodeID(i-1), nodeID(i))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string {
	return "p" + strconv.Itoa(i+1)
}

func fmtAttrs(i int, p book.Page, detailed bool) []string {
	label := fmt.Sprintf("%d. %s", i+1, p.Title())
	if detailed {
		label += "\n" + p.Kind().String()
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if p.Drawable() {
		attrs = append(attrs, "fillcolor=\"#FFF3E0\"", "color=\"#3E2723\"")
	}
	if p.Kind() == book.KindCover || p.Kind() == book.KindDiploma {
		attrs = append(attrs, "penwidth=2")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one whose
// width and height match the viewBox, so the diagram scales in browsers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}

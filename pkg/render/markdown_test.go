package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/miniworld/pkg/book"
)

func TestMarkdownBlocks(t *testing.T) {
	p := book.NewPage(book.KindText, "All blocks",
		book.Heading(1, "Title"),
		book.Heading(9, "Deep"),
		book.Paragraph("Some **bold** text."),
		book.Note("Remember this."),
		book.List("a", "b"),
		book.OrderedList("first", "second"),
		book.Pictures(book.Image{Src: "assets/a.png", Alt: "A"}, book.Image{Src: "assets/b.png", Alt: "B"}),
		book.Fields("Color", "Sal", "Azúcar"),
		book.Quiz(book.Question{Question: "Why?", Options: []string{"a) yes", "b) no"}}),
		book.Canvas("Lienzo", "Limpiar"),
	)

	got := Markdown(p)
	for _, want := range []string{
		"# Title\n",
		"###### Deep\n",
		"Some **bold** text.",
		"> Remember this.",
		"- a\n- b",
		"1. first\n2. second",
		"![A](assets/a.png) ![B](assets/b.png)",
		"- Sal: `______` *(Color)*\n- Azúcar: `______` *(Color)*",
		"**1. Why?**\n\n- ( ) a) yes\n- ( ) b) no",
		"> ✏️  Lienzo · [Limpiar]",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Markdown() missing %q in:\n%s", want, got)
		}
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("Markdown() should end with a newline")
	}
}

func TestMarkdownWithoutCanvas(t *testing.T) {
	p := book.NewPage(book.KindChallenge, "Desafío 1",
		book.Paragraph("Dibuja."),
		book.Canvas("Lienzo", "Limpiar"),
	)

	if got := Markdown(p, WithoutCanvas()); strings.Contains(got, "Lienzo") {
		t.Errorf("WithoutCanvas() still renders the canvas:\n%s", got)
	}
}

func TestWriteBook(t *testing.T) {
	s, _ := book.NewStore(
		book.NewPage(book.KindCover, "Cover", book.Heading(1, "Cover")),
		book.NewPage(book.KindSection, "Intro", book.Paragraph("Hello")),
		book.NewPage(book.KindDiploma, "Diploma", book.Heading(1, "Done")),
	)

	var buf bytes.Buffer
	if err := WriteBook(&buf, s); err != nil {
		t.Fatalf("WriteBook: %v", err)
	}

	out := buf.String()
	if got := strings.Count(out, "\n---\n"); got != 2 {
		t.Errorf("page breaks = %d, want 2", got)
	}
	for _, want := range []string{"<!-- 1 / 3: Cover -->", "<!-- 2 / 3: Intro -->", "<!-- 3 / 3: Diploma -->"} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteBook() missing %q", want)
		}
	}
}

func TestTerminalRender(t *testing.T) {
	term, err := NewTerminal(60, "notty")
	if err != nil {
		t.Fatalf("NewTerminal: %v", err)
	}
	if term.Width() != 60 {
		t.Errorf("Width() = %d, want 60", term.Width())
	}

	p := book.NewPage(book.KindChallenge, "Desafío 1",
		book.Heading(1, "Desafío 1"),
		book.Paragraph("Observa un grano de sal."),
		book.Canvas("Lienzo de dibujo", "Limpiar dibujo"),
	)

	out, err := term.Render(p)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "Observa un grano de sal.") {
		t.Errorf("Render() missing paragraph:\n%s", out)
	}
	if strings.Contains(out, "Lienzo de dibujo") {
		t.Error("Render() should leave the canvas to the front end")
	}
}

func TestNewTerminalUnknownTheme(t *testing.T) {
	if _, err := NewTerminal(60, "no-such-theme"); err == nil {
		t.Error("NewTerminal() with unknown theme should fail")
	}
}

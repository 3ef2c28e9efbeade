package book

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/miniworld/pkg/errors"
)

func TestDefaultBook(t *testing.T) {
	s := Default()

	// cover + 3 sections + 5 chapters x (header + 5 challenges + games) + 5 blank + diploma
	if s.Len() != 45 {
		t.Fatalf("Len() = %d, want 45", s.Len())
	}

	first, _ := s.Get(0)
	if first.Kind() != KindCover || first.Title() != "Portada" {
		t.Errorf("page 0 = %s %q, want cover %q", first.Kind(), first.Title(), "Portada")
	}

	last, _ := s.Get(s.Len() - 1)
	if last.Kind() != KindDiploma || last.Title() != "Diploma" {
		t.Errorf("last page = %s %q, want diploma", last.Kind(), last.Title())
	}

	titles := s.Titles()
	wantStart := []string{"Portada", "Bienvenida", "Partes del Microscopio", "Uso Seguro", "Capítulo 1", "Desafío 1"}
	if !slices.Equal(titles[:len(wantStart)], wantStart) {
		t.Errorf("first titles = %v, want %v", titles[:len(wantStart)], wantStart)
	}
	if titles[10] != "Juegos y Quiz 1" {
		t.Errorf("titles[10] = %q, want %q", titles[10], "Juegos y Quiz 1")
	}
}

func TestDefaultBookDrawablePages(t *testing.T) {
	s := Default()

	for i, p := range s.All() {
		want := p.Kind() == KindChallenge || p.Kind() == KindBlank
		if p.Drawable() != want {
			t.Errorf("page %d (%s %q) Drawable() = %v, want %v", i, p.Kind(), p.Title(), p.Drawable(), want)
		}
	}

	// 25 challenges + 5 blank pages
	if n := len(s.Drawable()); n != 30 {
		t.Errorf("len(Drawable()) = %d, want 30", n)
	}
}

func TestGamesQuizPage(t *testing.T) {
	c := DefaultCatalog()
	p := NewGamesQuiz(c.Labels, c.Games, c.Chapters[0])

	var fields, quiz *Block
	blocks := p.Blocks()
	for i := range blocks {
		switch blocks[i].Type {
		case BlockFields:
			fields = &blocks[i]
		case BlockQuiz:
			quiz = &blocks[i]
		}
	}

	if fields == nil || !slices.Equal(fields.Items, []string{"Sal", "Azúcar", "Cebolla", "Polvo", "Hoja seca"}) {
		t.Fatalf("color fields = %+v", fields)
	}
	if fields.Text != "Color" {
		t.Errorf("placeholder = %q, want %q", fields.Text, "Color")
	}
	if quiz == nil || len(quiz.Questions) != 2 {
		t.Fatalf("quiz = %+v, want 2 questions", quiz)
	}
}

func TestParseErrors(t *testing.T) {
	base := string(defaultCatalog)

	tests := []struct {
		name string
		doc  string
		code errors.Code
	}{
		{
			name: "syntax error",
			doc:  "title = ",
			code: errors.ErrCodeInvalidFormat,
		},
		{
			name: "unknown key",
			doc:  strings.Replace(base, "blank_pages = 5", "blank_pages = 5\nblank_pagse = 2", 1),
			code: errors.ErrCodeInvalidContent,
		},
		{
			name: "no chapters",
			doc: `
title = "x"
[labels]
chapter = "C"
challenge = "D"
games = "G"
[cover]
title = "Cover"
[diploma]
title = "Diploma"
`,
			code: errors.ErrCodeInvalidContent,
		},
		{
			name: "unsafe asset",
			doc:  strings.Replace(base, `src = "assets/microscope.png", alt = "Microscopio" }
items`, `src = "../microscope.png", alt = "Microscopio" }
items`, 1),
			code: errors.ErrCodeInvalidPath,
		},
		{
			name: "single option quiz",
			doc:  strings.Replace(base, `options = ["a) 2", "b) 6"]`, `options = ["a) 2"]`, 1),
			code: errors.ErrCodeInvalidContent,
		},
		{
			name: "negative blank pages",
			doc:  strings.Replace(base, "blank_pages = 5", "blank_pages = -1", 1),
			code: errors.ErrCodeInvalidContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, tt.code) {
				t.Errorf("Parse() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.toml")
	doc := strings.Replace(string(defaultCatalog), "blank_pages = 5", "blank_pages = 0", 1)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	s, err := c.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if s.Len() != 40 {
		t.Errorf("Len() = %d, want 40", s.Len())
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("LoadFile() error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

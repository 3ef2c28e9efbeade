package book

import (
	"slices"
	"testing"

	"github.com/matzehuels/miniworld/pkg/errors"
)

func threePages(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(
		NewPage(KindCover, "Cover", Heading(1, "Cover")),
		NewPage(KindSection, "Intro", Paragraph("hello")),
		NewPage(KindDiploma, "Diploma", Heading(1, "Well done")),
	)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestNewStoreEmpty(t *testing.T) {
	_, err := NewStore()
	if !errors.Is(err, errors.ErrCodeInvalidContent) {
		t.Fatalf("NewStore() error = %v, want %s", err, errors.ErrCodeInvalidContent)
	}
}

func TestStoreGet(t *testing.T) {
	s := threePages(t)

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	for i, want := range []string{"Cover", "Intro", "Diploma"} {
		p, err := s.Get(i)
		if err != nil {
			t.Fatalf("Get(%d): %v", i, err)
		}
		if p.Title() != want {
			t.Errorf("Get(%d).Title() = %q, want %q", i, p.Title(), want)
		}
	}
}

func TestStoreGetOutOfRange(t *testing.T) {
	s := threePages(t)

	for _, idx := range []int{-1, 3, 100} {
		_, err := s.Get(idx)
		if !errors.Is(err, errors.ErrCodeOutOfRange) {
			t.Errorf("Get(%d) error = %v, want %s", idx, err, errors.ErrCodeOutOfRange)
		}
	}
}

func TestStoreAllStopsEarly(t *testing.T) {
	s := threePages(t)

	var seen []int
	for i := range s.All() {
		seen = append(seen, i)
		if i == 1 {
			break
		}
	}
	if !slices.Equal(seen, []int{0, 1}) {
		t.Errorf("All() visited %v, want [0 1]", seen)
	}
}

func TestStoreDoesNotAliasInput(t *testing.T) {
	pages := []Page{NewPage(KindText, "A"), NewPage(KindText, "B")}
	s, err := NewStore(pages...)
	if err != nil {
		t.Fatal(err)
	}
	pages[0] = NewPage(KindText, "changed")

	p, _ := s.Get(0)
	if p.Title() != "A" {
		t.Errorf("Get(0).Title() = %q after caller mutation, want %q", p.Title(), "A")
	}
}

func TestPageImmutable(t *testing.T) {
	items := []string{"one", "two"}
	p := NewPage(KindText, "List", List(items...))
	items[0] = "mutated"

	blocks := p.Blocks()
	if blocks[0].Items[0] != "one" {
		t.Fatalf("page shares caller slice: got %q", blocks[0].Items[0])
	}

	blocks[0].Items[1] = "mutated"
	if got := p.Blocks()[0].Items[1]; got != "two" {
		t.Errorf("Blocks() returned shared slice: got %q", got)
	}
}

func TestPageDrawable(t *testing.T) {
	tests := []struct {
		name   string
		blocks []Block
		want   bool
	}{
		{"no content", nil, false},
		{"text only", []Block{Heading(1, "x"), Paragraph("y")}, false},
		{"with canvas", []Block{Paragraph("draw"), Canvas("Lienzo", "Limpiar")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewPage(KindText, "p", tt.blocks...).Drawable(); got != tt.want {
				t.Errorf("Drawable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if KindChallenge.String() != "challenge" {
		t.Errorf("KindChallenge.String() = %q", KindChallenge.String())
	}
	if Kind(99).String() != "unknown" {
		t.Errorf("Kind(99).String() = %q", Kind(99).String())
	}
}

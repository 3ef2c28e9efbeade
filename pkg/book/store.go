package book

import (
	"iter"
	"slices"

	"github.com/matzehuels/miniworld/pkg/errors"
)

// Store is the fixed, ordered catalog of pages. It is safe for concurrent
// reads since it never changes after construction.
type Store struct {
	pages []Page
}

// NewStore creates a store holding pages in order. A book needs at least
// one page; an empty list returns an [errors.ErrCodeInvalidContent] error.
func NewStore(pages ...Page) (*Store, error) {
	if len(pages) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidContent, "book has no pages")
	}
	return &Store{pages: slices.Clone(pages)}, nil
}

// Get returns the page at index. It fails with [errors.ErrCodeOutOfRange]
// when index is outside [0, Len()).
func (s *Store) Get(index int) (Page, error) {
	if index < 0 || index >= len(s.pages) {
		return Page{}, errors.OutOfRange("page", index, len(s.pages))
	}
	return s.pages[index], nil
}

// Len returns the number of pages.
func (s *Store) Len() int {
	return len(s.pages)
}

// All iterates over the pages in book order.
func (s *Store) All() iter.Seq2[int, Page] {
	return func(yield func(int, Page) bool) {
		for i, p := range s.pages {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Titles returns the page titles in book order.
func (s *Store) Titles() []string {
	titles := make([]string, len(s.pages))
	for i, p := range s.pages {
		titles[i] = p.title
	}
	return titles
}

// Drawable returns the indices of pages that declare a canvas.
func (s *Store) Drawable() []int {
	var out []int
	for i, p := range s.pages {
		if p.drawable {
			out = append(out, i)
		}
	}
	return out
}

package book

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/miniworld/pkg/errors"
)

//go:embed content/miniworld.toml
var defaultCatalog []byte

// Catalog is the data description a book is built from.
type Catalog struct {
	Title        string    `toml:"title"`
	BlankPages   int       `toml:"blank_pages"`
	ChapterImage *Image    `toml:"chapter_image"`
	Labels       Labels    `toml:"labels"`
	Cover        Cover     `toml:"cover"`
	Sections     []Section `toml:"sections"`
	Challenge    Challenge `toml:"challenge"`
	Games        Games     `toml:"games"`
	Blank        Blank     `toml:"blank"`
	Chapters     []Chapter `toml:"chapters"`
	Diploma      Diploma   `toml:"diploma"`
}

// Labels are the words used to compose generated page titles.
type Labels struct {
	Chapter   string `toml:"chapter"`
	Challenge string `toml:"challenge"`
	Games     string `toml:"games"`
	Canvas    string `toml:"canvas"`
	Clear     string `toml:"clear"`
}

// Cover describes the title page.
type Cover struct {
	Title      string `toml:"title"`
	Heading    string `toml:"heading"`
	Subtitle   string `toml:"subtitle"`
	Dedication string `toml:"dedication"`
	Image      *Image `toml:"image"`
}

// Section is a free-form introduction page. Its blocks appear in field
// order: heading, image, paragraphs, list, note.
type Section struct {
	Title      string   `toml:"title"`
	Heading    string   `toml:"heading"`
	Image      *Image   `toml:"image"`
	Paragraphs []string `toml:"paragraphs"`
	Items      []string `toml:"items"`
	Ordered    bool     `toml:"ordered"`
	Note       string   `toml:"note"`
}

// Challenge holds text shared by every challenge page.
type Challenge struct {
	Footer string `toml:"footer"`
}

// Games holds the fixed text of the games & quiz pages.
type Games struct {
	FindHeading      string `toml:"find_heading"`
	FindText         string `toml:"find_text"`
	ColorHeading     string `toml:"color_heading"`
	ColorText        string `toml:"color_text"`
	ColorPlaceholder string `toml:"color_placeholder"`
	QuizHeading      string `toml:"quiz_heading"`
}

// Blank describes the free drawing pages appended after the chapters.
type Blank struct {
	Title       string `toml:"title"`
	Heading     string `toml:"heading"`
	Instruction string `toml:"instruction"`
}

// Chapter is one themed chapter of observation challenges.
type Chapter struct {
	Number      int        `toml:"number"`
	Title       string     `toml:"title"`
	Description string     `toml:"description"`
	Challenges  []string   `toml:"challenges"`
	Objects     []string   `toml:"objects"`
	Quiz        []Question `toml:"quiz"`
}

// Diploma describes the closing certificate page.
type Diploma struct {
	Title     string   `toml:"title"`
	Heading   string   `toml:"heading"`
	AwardedTo string   `toml:"awarded_to"`
	Body      []string `toml:"body"`
	Images    []Image  `toml:"images"`
	Signature string   `toml:"signature"`
}

// Parse decodes a TOML catalog and validates it. Unknown keys are rejected
// so that typos in hand-written catalogs do not silently drop content.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode catalog")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidContent, "unknown catalog keys: %s", strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile reads and parses a catalog file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "catalog %s not found", path)
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// DefaultCatalog returns the embedded catalog.
func DefaultCatalog() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("book: embedded catalog: %v", err))
	}
	return c
}

// Default builds the embedded book.
func Default() *Store {
	s, err := DefaultCatalog().Build()
	if err != nil {
		panic(fmt.Sprintf("book: embedded catalog: %v", err))
	}
	return s
}

// Validate checks that the catalog can be built into a book.
func (c *Catalog) Validate() error {
	if len(c.Chapters) == 0 {
		return errors.New(errors.ErrCodeInvalidContent, "catalog has no chapters")
	}
	if c.BlankPages < 0 {
		return errors.New(errors.ErrCodeInvalidContent, "blank_pages cannot be negative")
	}

	texts := []struct{ field, value string }{
		{"labels.chapter", c.Labels.Chapter},
		{"labels.challenge", c.Labels.Challenge},
		{"labels.games", c.Labels.Games},
		{"cover.title", c.Cover.Title},
		{"diploma.title", c.Diploma.Title},
	}
	if c.BlankPages > 0 {
		texts = append(texts, struct{ field, value string }{"blank.title", c.Blank.Title})
	}
	for _, t := range texts {
		if err := errors.ValidateText(t.field, t.value); err != nil {
			return err
		}
	}

	images := []*Image{c.ChapterImage, c.Cover.Image}
	for i := range c.Diploma.Images {
		images = append(images, &c.Diploma.Images[i])
	}
	for _, s := range c.Sections {
		if err := errors.ValidateText("section title", s.Title); err != nil {
			return err
		}
		images = append(images, s.Image)
	}
	for _, img := range images {
		if img == nil {
			continue
		}
		if err := errors.ValidateAssetPath(img.Src); err != nil {
			return err
		}
	}

	seen := make(map[int]bool, len(c.Chapters))
	for _, ch := range c.Chapters {
		if err := ch.validate(); err != nil {
			return err
		}
		if seen[ch.Number] {
			return errors.New(errors.ErrCodeInvalidContent, "duplicate chapter number %d", ch.Number)
		}
		seen[ch.Number] = true
	}
	return nil
}

func (ch Chapter) validate() error {
	if ch.Number <= 0 {
		return errors.New(errors.ErrCodeInvalidContent, "chapter number must be positive, got %d", ch.Number)
	}
	if err := errors.ValidateText(fmt.Sprintf("chapter %d title", ch.Number), ch.Title); err != nil {
		return err
	}
	for i, instr := range ch.Challenges {
		if strings.TrimSpace(instr) == "" {
			return errors.New(errors.ErrCodeInvalidContent, "chapter %d: challenge %d has no instruction", ch.Number, i+1)
		}
	}
	for _, obj := range ch.Objects {
		if err := errors.ValidateText(fmt.Sprintf("chapter %d object", ch.Number), obj); err != nil {
			return err
		}
	}
	for i, q := range ch.Quiz {
		if strings.TrimSpace(q.Question) == "" {
			return errors.New(errors.ErrCodeInvalidContent, "chapter %d: quiz question %d is empty", ch.Number, i+1)
		}
		if len(q.Options) < 2 {
			return errors.New(errors.ErrCodeInvalidContent, "chapter %d: quiz question %d needs at least two options", ch.Number, i+1)
		}
	}
	return nil
}

// Pages lays out every page of the catalog in book order.
func (c *Catalog) Pages() []Page {
	pages := []Page{NewCover(c.Cover)}
	for _, s := range c.Sections {
		pages = append(pages, NewSection(s))
	}
	for _, ch := range c.Chapters {
		pages = append(pages, NewChapterHeader(c.Labels, ch, c.ChapterImage))
		for i, instr := range ch.Challenges {
			pages = append(pages, NewChallenge(c.Labels, i+1, instr, c.Challenge.Footer))
		}
		pages = append(pages, NewGamesQuiz(c.Labels, c.Games, ch))
	}
	for range c.BlankPages {
		pages = append(pages, NewBlankPage(c.Labels, c.Blank))
	}
	return append(pages, NewDiploma(c.Diploma))
}

// Build validates the catalog and returns its page store.
func (c *Catalog) Build() (*Store, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return NewStore(c.Pages()...)
}

package book

import "slices"

// Kind classifies a page by the builder that produced it.
type Kind int

// Page kinds.
const (
	KindText Kind = iota
	KindCover
	KindSection
	KindChapter
	KindChallenge
	KindGames
	KindBlank
	KindDiploma
)

var kindNames = [...]string{
	KindText:      "text",
	KindCover:     "cover",
	KindSection:   "section",
	KindChapter:   "chapter",
	KindChallenge: "challenge",
	KindGames:     "games",
	KindBlank:     "blank",
	KindDiploma:   "diploma",
}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// BlockType identifies the shape of a content block.
type BlockType int

// Block types.
const (
	BlockHeading BlockType = iota + 1
	BlockParagraph
	BlockNote
	BlockList
	BlockOrderedList
	BlockImage
	BlockFields
	BlockQuiz
	BlockCanvas
)

// Image references a picture asset relative to the book directory.
type Image struct {
	Src string `toml:"src"`
	Alt string `toml:"alt"`
}

// Question is a multiple-choice quiz question.
type Question struct {
	Question string   `toml:"question"`
	Options  []string `toml:"options"`
}

// Block is one unit of page content. Which fields are meaningful depends on
// Type:
//
//   - BlockHeading: Text, Level
//   - BlockParagraph, BlockNote: Text
//   - BlockList, BlockOrderedList: Items
//   - BlockImage: Images
//   - BlockFields: Items (labels), Text (placeholder)
//   - BlockQuiz: Questions
//   - BlockCanvas: Text (caption), Items[0] (label of the clear control)
type Block struct {
	Type      BlockType
	Level     int
	Text      string
	Items     []string
	Images    []Image
	Questions []Question
}

// Heading returns a heading block. Level 1 is the page heading.
func Heading(level int, text string) Block {
	return Block{Type: BlockHeading, Level: level, Text: text}
}

// Paragraph returns a paragraph block.
func Paragraph(text string) Block {
	return Block{Type: BlockParagraph, Text: text}
}

// Note returns a highlighted call-out block.
func Note(text string) Block {
	return Block{Type: BlockNote, Text: text}
}

// List returns a bulleted list block.
func List(items ...string) Block {
	return Block{Type: BlockList, Items: items}
}

// OrderedList returns a numbered list block.
func OrderedList(items ...string) Block {
	return Block{Type: BlockOrderedList, Items: items}
}

// Pictures returns an image block showing imgs side by side.
func Pictures(imgs ...Image) Block {
	return Block{Type: BlockImage, Images: imgs}
}

// Fields returns a block of labelled free-text fields sharing a placeholder.
func Fields(placeholder string, labels ...string) Block {
	return Block{Type: BlockFields, Text: placeholder, Items: labels}
}

// Quiz returns a multiple-choice quiz block.
func Quiz(questions ...Question) Block {
	return Block{Type: BlockQuiz, Questions: questions}
}

// Canvas returns a drawing canvas block. clearLabel captions the control
// that erases the drawing.
func Canvas(caption, clearLabel string) Block {
	return Block{Type: BlockCanvas, Text: caption, Items: []string{clearLabel}}
}

// ClearLabel returns the caption of a canvas block's clear control.
func (b Block) ClearLabel() string {
	if b.Type != BlockCanvas || len(b.Items) == 0 {
		return ""
	}
	return b.Items[0]
}

func (b Block) clone() Block {
	b.Items = slices.Clone(b.Items)
	b.Images = slices.Clone(b.Images)
	if b.Questions != nil {
		qs := make([]Question, len(b.Questions))
		for i, q := range b.Questions {
			qs[i] = Question{Question: q.Question, Options: slices.Clone(q.Options)}
		}
		b.Questions = qs
	}
	return b
}

func cloneBlocks(blocks []Block) []Block {
	if blocks == nil {
		return nil
	}
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		out[i] = b.clone()
	}
	return out
}

// Page is one navigable unit of the book. The zero value is an untitled,
// empty, non-drawable page.
type Page struct {
	kind     Kind
	title    string
	blocks   []Block
	drawable bool
}

// NewPage creates a page from its title and content. The blocks are copied,
// so later changes to the caller's slices do not affect the page.
func NewPage(kind Kind, title string, blocks ...Block) Page {
	p := Page{kind: kind, title: title, blocks: cloneBlocks(blocks)}
	for _, b := range blocks {
		if b.Type == BlockCanvas {
			p.drawable = true
			break
		}
	}
	return p
}

// Kind returns the page kind.
func (p Page) Kind() Kind { return p.kind }

// Title returns the page title shown in the header region.
func (p Page) Title() string { return p.title }

// Blocks returns a copy of the page content.
func (p Page) Blocks() []Block { return cloneBlocks(p.blocks) }

// Drawable reports whether the page declares a drawing canvas.
func (p Page) Drawable() bool { return p.drawable }

package book

import "fmt"

// NewCover builds the title page.
func NewCover(c Cover) Page {
	blocks := []Block{Heading(1, c.Heading)}
	if c.Subtitle != "" {
		blocks = append(blocks, Paragraph(c.Subtitle))
	}
	if c.Image != nil {
		blocks = append(blocks, Pictures(*c.Image))
	}
	if c.Dedication != "" {
		blocks = append(blocks, Paragraph(c.Dedication))
	}
	return NewPage(KindCover, c.Title, blocks...)
}

// NewSection builds an introduction page.
func NewSection(s Section) Page {
	heading := s.Heading
	if heading == "" {
		heading = s.Title
	}
	blocks := []Block{Heading(1, heading)}
	if s.Image != nil {
		blocks = append(blocks, Pictures(*s.Image))
	}
	for _, p := range s.Paragraphs {
		blocks = append(blocks, Paragraph(p))
	}
	if len(s.Items) > 0 {
		if s.Ordered {
			blocks = append(blocks, OrderedList(s.Items...))
		} else {
			blocks = append(blocks, List(s.Items...))
		}
	}
	if s.Note != "" {
		blocks = append(blocks, Note(s.Note))
	}
	return NewPage(KindSection, s.Title, blocks...)
}

// NewChapterHeader builds the page that opens a chapter. Its title is
// "<labels.Chapter> N".
func NewChapterHeader(l Labels, ch Chapter, img *Image) Page {
	blocks := []Block{
		Heading(1, fmt.Sprintf("%s %d: %s", l.Chapter, ch.Number, ch.Title)),
		Paragraph(ch.Description),
	}
	if img != nil {
		blocks = append(blocks, Pictures(*img))
	}
	return NewPage(KindChapter, fmt.Sprintf("%s %d", l.Chapter, ch.Number), blocks...)
}

// NewChallenge builds a drawable observation challenge. number counts
// challenges within their chapter, starting at 1.
func NewChallenge(l Labels, number int, instruction, footer string) Page {
	title := fmt.Sprintf("%s %d", l.Challenge, number)
	blocks := []Block{
		Heading(1, title),
		Paragraph(instruction),
		Canvas(l.Canvas, l.Clear),
	}
	if footer != "" {
		blocks = append(blocks, Note(footer))
	}
	return NewPage(KindChallenge, title, blocks...)
}

// NewGamesQuiz builds the games & quiz page closing a chapter: an object
// hunt, a color guessing game with one field per object, and a mini quiz.
func NewGamesQuiz(l Labels, g Games, ch Chapter) Page {
	blocks := []Block{
		Heading(2, g.FindHeading),
		Paragraph(g.FindText),
		List(ch.Objects...),
		Heading(2, g.ColorHeading),
		Paragraph(g.ColorText),
		Fields(g.ColorPlaceholder, ch.Objects...),
	}
	if len(ch.Quiz) > 0 {
		blocks = append(blocks, Heading(2, g.QuizHeading), Quiz(ch.Quiz...))
	}
	return NewPage(KindGames, fmt.Sprintf("%s %d", l.Games, ch.Number), blocks...)
}

// NewBlankPage builds a free drawing page.
func NewBlankPage(l Labels, b Blank) Page {
	return NewPage(KindBlank, b.Title,
		Heading(1, b.Heading),
		Paragraph(b.Instruction),
		Canvas(l.Canvas, l.Clear),
	)
}

// NewDiploma builds the closing certificate.
func NewDiploma(d Diploma) Page {
	blocks := []Block{Heading(1, d.Heading)}
	if d.AwardedTo != "" {
		blocks = append(blocks, Paragraph(d.AwardedTo))
	}
	for _, p := range d.Body {
		blocks = append(blocks, Paragraph(p))
	}
	if len(d.Images) > 0 {
		blocks = append(blocks, Pictures(d.Images...))
	}
	if d.Signature != "" {
		blocks = append(blocks, Paragraph(d.Signature))
	}
	return NewPage(KindDiploma, d.Title, blocks...)
}

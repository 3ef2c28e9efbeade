// Package book holds the page model and the page store of a picture book.
//
// # Overview
//
// A book is a fixed, ordered sequence of [Page] records. Each page has a
// title and a list of structured content [Block] values (headings,
// paragraphs, lists, images, quizzes, drawing canvases). Pages are
// immutable: their fields are unexported and every accessor returns a copy.
// A page is drawable when its content contains a canvas block.
//
// The [Store] is built once and never changes length:
//
//	store := book.Default()
//	page, err := store.Get(0)
//	if err != nil {
//	    // errors.Is(err, errors.ErrCodeOutOfRange)
//	}
//	fmt.Println(page.Title(), page.Drawable())
//
// # Catalogs
//
// Page content is data. A [Catalog] describes the cover, introduction
// sections, chapters (challenges, games and quiz), blank drawing pages and
// the closing diploma. Catalogs are TOML documents:
//
//	cat, err := book.LoadFile("my-book.toml")
//	if err != nil {
//	    return err
//	}
//	store, err := cat.Build()
//
// [Default] builds the embedded catalog, "Isabella y el Mundo en
// Miniatura", which has 45 pages.
//
// # Book Order
//
// [Catalog.Build] lays pages out as: cover, introduction sections, then for
// every chapter its header, one challenge page per challenge and a games &
// quiz page, then the blank drawing pages, then the diploma.
package book

// Package record defines the core domain types for bibliographic records.
package record

import (
	"errors"
	"strings"
)

// SineLoco is the citation placeholder for an unknown place of publication.
const SineLoco = "[S.l.]"

// Validation errors returned by the record constructors.
var (
	ErrEmptyMainAuthor = errors.New("record: main author must not be empty")
	ErrEmptyTitle      = errors.New("record: title must not be empty")
	ErrEmptyContainer  = errors.New("record: container title must not be empty")
	ErrEmptyPublisher  = errors.New("record: publisher must not be empty")
	ErrNoYear          = errors.New("record: publication year must not be zero")
)

// JournalArticle is an article published in a journal.
type JournalArticle struct {
	MainAuthor   string   `json:"main_author"`
	OtherAuthors []string `json:"other_authors,omitempty"` // citation order

	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`

	JournalTitle    string `json:"journal_title"`
	JournalSubtitle string `json:"journal_subtitle,omitempty"`

	DOI string `json:"doi,omitempty"`
	URL string `json:"url,omitempty"`

	Location string `json:"location"`
	Volume   *int   `json:"volume,omitempty"`
	Issue    *int   `json:"issue,omitempty"`
	Section  string `json:"section,omitempty"`
	Pages    string `json:"pages,omitempty"`

	Published PubDate `json:"published"`
}

// ProceedingsArticle is an article published in conference proceedings.
// Structurally identical to JournalArticle; only the container naming differs.
type ProceedingsArticle struct {
	MainAuthor   string   `json:"main_author"`
	OtherAuthors []string `json:"other_authors,omitempty"`

	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`

	ProceedingTitle    string `json:"proceeding_title"`
	ProceedingSubtitle string `json:"proceeding_subtitle,omitempty"`

	DOI string `json:"doi,omitempty"`
	URL string `json:"url,omitempty"`

	Location string `json:"location"`
	Volume   *int   `json:"volume,omitempty"`
	Issue    *int   `json:"issue,omitempty"`
	Section  string `json:"section,omitempty"`
	Pages    string `json:"pages,omitempty"`

	Published PubDate `json:"published"`
}

// Monograph is a book-like work. MainAuthor and OtherAuthors may hold
// organizational names when the source reports no person author.
type Monograph struct {
	MainAuthor   string   `json:"main_author"`
	OtherAuthors []string `json:"other_authors,omitempty"`

	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`

	ISBN string `json:"isbn,omitempty"`
	URL  string `json:"url,omitempty"`

	Edition   *int   `json:"edition,omitempty"`
	Publisher string `json:"publisher"`
	Location  string `json:"location"`

	Year int `json:"year"` // Open Library only exposes year precision
}

// NewJournalArticle validates and returns a JournalArticle. The location
// falls back to SineLoco when empty; the main author is removed from
// OtherAuthors if it slipped in.
func NewJournalArticle(a JournalArticle) (JournalArticle, error) {
	a.MainAuthor = strings.TrimSpace(a.MainAuthor)
	if a.MainAuthor == "" {
		return JournalArticle{}, ErrEmptyMainAuthor
	}
	if strings.TrimSpace(a.Title) == "" {
		return JournalArticle{}, ErrEmptyTitle
	}
	if strings.TrimSpace(a.JournalTitle) == "" {
		return JournalArticle{}, ErrEmptyContainer
	}
	if a.Published.Year == 0 {
		return JournalArticle{}, ErrNoYear
	}
	a.Location = orSineLoco(a.Location)
	a.OtherAuthors = dropAuthor(a.OtherAuthors, a.MainAuthor)
	return a, nil
}

// NewProceedingsArticle validates and returns a ProceedingsArticle.
func NewProceedingsArticle(a ProceedingsArticle) (ProceedingsArticle, error) {
	a.MainAuthor = strings.TrimSpace(a.MainAuthor)
	if a.MainAuthor == "" {
		return ProceedingsArticle{}, ErrEmptyMainAuthor
	}
	if strings.TrimSpace(a.Title) == "" {
		return ProceedingsArticle{}, ErrEmptyTitle
	}
	if strings.TrimSpace(a.ProceedingTitle) == "" {
		return ProceedingsArticle{}, ErrEmptyContainer
	}
	if a.Published.Year == 0 {
		return ProceedingsArticle{}, ErrNoYear
	}
	a.Location = orSineLoco(a.Location)
	a.OtherAuthors = dropAuthor(a.OtherAuthors, a.MainAuthor)
	return a, nil
}

// NewMonograph validates and returns a Monograph.
func NewMonograph(m Monograph) (Monograph, error) {
	m.MainAuthor = strings.TrimSpace(m.MainAuthor)
	if m.MainAuthor == "" {
		return Monograph{}, ErrEmptyMainAuthor
	}
	if strings.TrimSpace(m.Title) == "" {
		return Monograph{}, ErrEmptyTitle
	}
	if strings.TrimSpace(m.Publisher) == "" {
		return Monograph{}, ErrEmptyPublisher
	}
	if m.Year == 0 {
		return Monograph{}, ErrNoYear
	}
	m.Location = orSineLoco(m.Location)
	m.OtherAuthors = dropAuthor(m.OtherAuthors, m.MainAuthor)
	return m, nil
}

func orSineLoco(location string) string {
	if strings.TrimSpace(location) == "" {
		return SineLoco
	}
	return strings.TrimSpace(location)
}

// dropAuthor filters name out of authors, preserving order.
func dropAuthor(authors []string, name string) []string {
	if len(authors) == 0 {
		return nil
	}
	out := make([]string, 0, len(authors))
	for _, a := range authors {
		a = strings.TrimSpace(a)
		if a == "" || a == name {
			continue
		}
		out = append(out, a)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

package openlibrary

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gmoura/cita/internal/record"
)

// anonymousAuthor is the Open Library sentinel for works with no identified
// person author. Such works are credited to their publishers instead.
const anonymousAuthor = "[author not identified]"

// yearPattern extracts the year from the free-text publish_date field
// ("Oct 1, 1988", "1988", "circa 1988"). Month and day granularity is lost
// by source design.
var yearPattern = regexp.MustCompile(`\d{4}`)

// bookEntry is one envelope value of the jscmd=details response.
type bookEntry struct {
	InfoURL string      `json:"info_url"`
	Details bookDetails `json:"details"`
}

// bookDetails models the subset of the Open Library edition schema the
// normalizer reads. Every field may be absent.
type bookDetails struct {
	Authors       []bookAuthor `json:"authors"`
	Title         string       `json:"title"`
	Subtitle      string       `json:"subtitle"`
	Publishers    []string     `json:"publishers"`
	PublishDate   string       `json:"publish_date"`
	Revision      int          `json:"revision"`
	PublishPlaces []string     `json:"publish_places"`
}

type bookAuthor struct {
	Name string `json:"name"`
}

// normalizeBook maps an Open Library entry into a Monograph record.
func normalizeBook(entry bookEntry, isbn string) (record.Monograph, error) {
	details := entry.Details

	if strings.TrimSpace(details.Title) == "" {
		return record.Monograph{}, &MissingFieldError{Field: "title"}
	}
	if len(details.Publishers) == 0 || strings.TrimSpace(details.Publishers[0]) == "" {
		return record.Monograph{}, &MissingFieldError{Field: "publishers"}
	}

	main, others, err := extractAuthors(details)
	if err != nil {
		return record.Monograph{}, err
	}

	year := extractYear(details.PublishDate)
	if year == 0 {
		return record.Monograph{}, &MissingFieldError{Field: "publish_date"}
	}

	var edition *int
	if details.Revision > 0 {
		rev := details.Revision
		edition = &rev
	}

	var location string
	if len(details.PublishPlaces) > 0 {
		location = details.PublishPlaces[0]
	}

	return record.NewMonograph(record.Monograph{
		MainAuthor:   main,
		OtherAuthors: others,
		Title:        strings.TrimSpace(details.Title),
		Subtitle:     strings.TrimSpace(details.Subtitle),
		ISBN:         isbn,
		URL:          entry.InfoURL,
		Edition:      edition,
		Publisher:    strings.TrimSpace(details.Publishers[0]),
		Location:     location,
		Year:         year,
	})
}

// extractAuthors returns the main/other author split. When the author list
// is absent, or its first entry is the anonymous-author sentinel, the
// publishers are credited as authors in list order.
func extractAuthors(details bookDetails) (main string, others []string, err error) {
	names := make([]string, 0, len(details.Authors))
	for _, a := range details.Authors {
		if name := strings.TrimSpace(a.Name); name != "" {
			names = append(names, name)
		}
	}

	if len(names) == 0 || names[0] == anonymousAuthor {
		names = names[:0]
		for _, p := range details.Publishers {
			if p = strings.TrimSpace(p); p != "" {
				names = append(names, p)
			}
		}
	}

	if len(names) == 0 {
		return "", nil, &MissingFieldError{Field: "authors"}
	}
	if len(names) == 1 {
		return names[0], nil, nil
	}
	return names[0], names[1:], nil
}

// extractYear returns the first 4-digit run in a free-text date, or 0.
func extractYear(publishDate string) int {
	match := yearPattern.FindString(publishDate)
	if match == "" {
		return 0
	}
	year, _ := strconv.Atoi(match)
	return year
}

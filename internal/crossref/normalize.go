package crossref

import (
	"strconv"
	"strings"

	"github.com/gmoura/cita/internal/record"
)

// normalizeJournalArticle maps a raw Crossref journal-article message into a
// JournalArticle record.
func normalizeJournalArticle(msg workMessage) (record.JournalArticle, error) {
	main, others, err := extractAuthors(msg.Author)
	if err != nil {
		return record.JournalArticle{}, err
	}

	title, err := extractTitle(msg.Title)
	if err != nil {
		return record.JournalArticle{}, err
	}

	container, containerSub, err := extractContainer(msg.ContainerTitle)
	if err != nil {
		return record.JournalArticle{}, err
	}

	if msg.DOI == "" {
		return record.JournalArticle{}, &MissingFieldError{Field: "DOI"}
	}

	url, err := extractURL(msg)
	if err != nil {
		return record.JournalArticle{}, err
	}

	published, err := extractDate(msg.Published, msg.Created)
	if err != nil {
		return record.JournalArticle{}, err
	}

	return record.NewJournalArticle(record.JournalArticle{
		MainAuthor:      main,
		OtherAuthors:    others,
		Title:           title,
		Subtitle:        extractSubtitle(msg.Subtitle),
		JournalTitle:    container,
		JournalSubtitle: containerSub,
		DOI:             msg.DOI,
		URL:             url,
		Location:        msg.PublisherLocation,
		Volume:          parseOptionalInt(msg.Volume),
		Issue:           parseOptionalInt(msg.Issue),
		Pages:           msg.Page,
		Published:       published,
	})
}

// normalizeProceedingsArticle maps a raw Crossref proceedings-article
// message into a ProceedingsArticle record. Identical to the journal rules
// except the location comes from the nested event.
func normalizeProceedingsArticle(msg workMessage) (record.ProceedingsArticle, error) {
	main, others, err := extractAuthors(msg.Author)
	if err != nil {
		return record.ProceedingsArticle{}, err
	}

	title, err := extractTitle(msg.Title)
	if err != nil {
		return record.ProceedingsArticle{}, err
	}

	container, containerSub, err := extractContainer(msg.ContainerTitle)
	if err != nil {
		return record.ProceedingsArticle{}, err
	}

	if msg.DOI == "" {
		return record.ProceedingsArticle{}, &MissingFieldError{Field: "DOI"}
	}

	url, err := extractURL(msg)
	if err != nil {
		return record.ProceedingsArticle{}, err
	}

	published, err := extractDate(msg.Published, msg.Created)
	if err != nil {
		return record.ProceedingsArticle{}, err
	}

	var location string
	if msg.Event != nil {
		location = msg.Event.Location
	}

	return record.NewProceedingsArticle(record.ProceedingsArticle{
		MainAuthor:         main,
		OtherAuthors:       others,
		Title:              title,
		Subtitle:           extractSubtitle(msg.Subtitle),
		ProceedingTitle:    container,
		ProceedingSubtitle: containerSub,
		DOI:                msg.DOI,
		URL:                url,
		Location:           location,
		Volume:             parseOptionalInt(msg.Volume),
		Issue:              parseOptionalInt(msg.Issue),
		Pages:              msg.Page,
		Published:          published,
	})
}

// extractAuthors builds the main/other author split from the upstream
// author list. Organizational entries (combined name, no given/family) never
// contribute to article authorship. The entry with sequence "first" becomes
// the main author; when no entry is marked first, the first person entry is
// promoted so a well-formed list still yields a record.
func extractAuthors(authors []workAuthor) (main string, others []string, err error) {
	if len(authors) == 0 {
		return "", nil, &MissingFieldError{Field: "author"}
	}

	var persons []string
	firstIdx := -1
	for _, a := range authors {
		if a.Name != "" && a.Given == "" && a.Family == "" {
			continue // organization
		}
		name := strings.TrimSpace(strings.TrimSpace(a.Given) + " " + strings.TrimSpace(a.Family))
		if name == "" {
			continue
		}
		if a.Sequence == "first" && firstIdx == -1 {
			firstIdx = len(persons)
		}
		persons = append(persons, name)
	}

	if len(persons) == 0 {
		return "", nil, &MissingFieldError{Field: "author"}
	}
	if firstIdx == -1 {
		firstIdx = 0
	}

	main = persons[firstIdx]
	others = make([]string, 0, len(persons)-1)
	others = append(others, persons[:firstIdx]...)
	others = append(others, persons[firstIdx+1:]...)
	if len(others) == 0 {
		others = nil
	}
	return main, others, nil
}

// extractTitle returns the first title entry, trimmed of surrounding
// whitespace and periods.
func extractTitle(titles []string) (string, error) {
	if len(titles) == 0 || strings.TrimSpace(titles[0]) == "" {
		return "", &MissingFieldError{Field: "title"}
	}
	return trimEdges(titles[0]), nil
}

// extractSubtitle returns the first subtitle entry, or empty when the list
// is absent. A missing subtitle is not an error.
func extractSubtitle(subtitles []string) string {
	if len(subtitles) == 0 {
		return ""
	}
	return trimEdges(subtitles[0])
}

// extractContainer splits the first container-title entry on its FIRST
// colon into title and subtitle. Without a colon the whole string is the
// title.
func extractContainer(containers []string) (title, subtitle string, err error) {
	if len(containers) == 0 || strings.TrimSpace(containers[0]) == "" {
		return "", "", &MissingFieldError{Field: "container-title"}
	}
	head, tail, found := strings.Cut(containers[0], ":")
	if !found {
		return trimEdges(containers[0]), "", nil
	}
	return trimEdges(head), trimEdges(tail), nil
}

// extractURL prefers the first link-list URL and falls back to the
// top-level URL field.
func extractURL(msg workMessage) (string, error) {
	if len(msg.Link) > 0 && msg.Link[0].URL != "" {
		return msg.Link[0].URL, nil
	}
	if msg.URL != "" {
		return msg.URL, nil
	}
	return "", &MissingFieldError{Field: "URL"}
}

// extractDate resolves the published date with a two-level fallback:
// published falls back to created at the field level, and a full calendar
// date falls back to a bare year at the precision level. No year anywhere
// is fatal for the record.
func extractDate(published, created *workDate) (record.PubDate, error) {
	parts := firstDateParts(published)
	if len(parts) == 0 {
		parts = firstDateParts(created)
	}
	if len(parts) == 0 || parts[0] == 0 {
		return record.PubDate{}, &MissingFieldError{Field: "published"}
	}

	d := record.PubDate{Year: parts[0]}
	if len(parts) >= 2 {
		d.Month = parts[1]
	}
	if len(parts) >= 3 {
		d.Day = parts[2]
	}
	return d, nil
}

func firstDateParts(f *workDate) []int {
	if f == nil || len(f.DateParts) == 0 {
		return nil
	}
	return f.DateParts[0]
}

// parseOptionalInt parses a numeric string field. Absent or non-numeric
// values yield nil, never zero; Crossref occasionally reports volumes like
// "Suppl 1" which carry no usable number.
func parseOptionalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// trimEdges trims whitespace and leading/trailing periods from a field
// value, in that order, matching how upstream titles embed terminators.
func trimEdges(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "."))
}

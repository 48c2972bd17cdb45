// Package abnt renders bibliographic records as citation strings following
// ABNT NBR 6023:2025 (articles 7.1-7.7). All formatters are pure functions
// of the record and the render-time date used for the access clause.
package abnt

import (
	"fmt"
	"strings"
	"time"

	"github.com/gmoura/cita/internal/record"
)

// monthAbbrev holds the Portuguese month abbreviations mandated by the
// standard. Index 0 is unused. "maio" is the only unabbreviated month.
var monthAbbrev = [13]string{
	"",
	"jan.",
	"fev.",
	"mar.",
	"abr.",
	"maio",
	"jun.",
	"jul.",
	"ago.",
	"set.",
	"out.",
	"nov.",
	"dez.",
}

// FormatAuthor renders a single display name in surname-first form:
// "John Robert Smith" becomes "SMITH, John Robert".
//
// The last whitespace-delimited token is treated as the family name. This is
// a positional heuristic with no notion of multi-word surnames or suffixes;
// "Ludwig van Beethoven" renders as "BEETHOVEN, Ludwig van".
func FormatAuthor(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}
	surname := strings.ToUpper(parts[len(parts)-1])
	given := strings.Join(parts[:len(parts)-1], " ")
	if given == "" {
		return surname
	}
	return surname + ", " + given
}

// formatAuthors renders the full author clause, main author first, each
// additional author after a semicolon-space separator.
func formatAuthors(main string, others []string) string {
	var b strings.Builder
	b.WriteString(FormatAuthor(main))
	for _, a := range others {
		b.WriteString("; ")
		b.WriteString(FormatAuthor(a))
	}
	return b.String()
}

// titleClause joins a title and optional subtitle.
func titleClause(title, subtitle string) string {
	if subtitle != "" {
		return title + ": " + subtitle
	}
	return title
}

// containerClause renders the emphasized journal or proceedings title. The
// subtitle, when present, stays outside the emphasis markup.
func containerClause(title, subtitle string) string {
	s := "<strong>" + title + "</strong>"
	if subtitle != "" {
		s += ": " + subtitle
	}
	return s
}

// dateClause renders the publication date suffix with its leading
// punctuation: ", 12 mar. 2023" at day precision, ", 2023" otherwise.
func dateClause(d record.PubDate) string {
	if d.Full() {
		return fmt.Sprintf(", %d %s %d", d.Day, monthAbbrev[d.Month], d.Year)
	}
	return fmt.Sprintf(", %d", d.Year)
}

// accessClause renders the online access fragment, stamping the date the
// citation was produced. today is injected by the caller so rendering stays
// deterministic under test.
func accessClause(url string, today time.Time) string {
	return fmt.Sprintf(" Disponível em: %s. Acesso em: %d %s %d.",
		url, today.Day(), monthAbbrev[int(today.Month())], today.Year())
}

// collapsePeriods folds runs of consecutive periods into a single period.
// Optional-clause omission can leave adjacent terminators behind; this runs
// on the fully assembled string and is idempotent.
func collapsePeriods(s string) string {
	for strings.Contains(s, "..") {
		s = strings.ReplaceAll(s, "..", ".")
	}
	return s
}

// FormatJournalArticle renders a journal article citation
// (ABNT NBR 6023:2025 - 7.7.7; 7.7.8).
//
// A non-empty section replaces the plain page clause and moves pagination
// after the date.
func FormatJournalArticle(a record.JournalArticle, today time.Time) string {
	var b strings.Builder
	b.WriteString(formatAuthors(a.MainAuthor, a.OtherAuthors))
	b.WriteString(". ")
	b.WriteString(titleClause(a.Title, a.Subtitle))
	b.WriteString(". ")
	b.WriteString(containerClause(a.JournalTitle, a.JournalSubtitle))
	b.WriteString(", ")
	b.WriteString(a.Location)
	if a.Volume != nil {
		fmt.Fprintf(&b, ", v. %d", *a.Volume)
	}
	if a.Issue != nil {
		fmt.Fprintf(&b, ", n. %d", *a.Issue)
	}
	if a.Section != "" {
		b.WriteString(dateClause(a.Published))
		fmt.Fprintf(&b, ", %s, p. %s", a.Section, a.Pages)
	} else {
		if a.Pages != "" {
			fmt.Fprintf(&b, ", p. %s", a.Pages)
		}
		b.WriteString(dateClause(a.Published))
	}
	b.WriteString(".")
	if a.DOI != "" {
		fmt.Fprintf(&b, " DOI: %s.", a.DOI)
	}
	if a.URL != "" {
		b.WriteString(accessClause(a.URL, today))
	}
	return collapsePeriods(b.String())
}

// FormatProceedingsArticle renders a proceedings article citation
// (ABNT NBR 6023:2025 - 7.7.5; 7.7.6). The page clause always precedes
// the date; proceedings carry no section.
func FormatProceedingsArticle(a record.ProceedingsArticle, today time.Time) string {
	var b strings.Builder
	b.WriteString(formatAuthors(a.MainAuthor, a.OtherAuthors))
	b.WriteString(". ")
	b.WriteString(titleClause(a.Title, a.Subtitle))
	b.WriteString(". ")
	b.WriteString(containerClause(a.ProceedingTitle, a.ProceedingSubtitle))
	b.WriteString(", ")
	b.WriteString(a.Location)
	if a.Volume != nil {
		fmt.Fprintf(&b, ", v. %d", *a.Volume)
	}
	if a.Issue != nil {
		fmt.Fprintf(&b, ", n. %d", *a.Issue)
	}
	if a.Pages != "" {
		fmt.Fprintf(&b, ", p. %s", a.Pages)
	}
	b.WriteString(dateClause(a.Published))
	b.WriteString(".")
	if a.DOI != "" {
		fmt.Fprintf(&b, " DOI: %s.", a.DOI)
	}
	if a.URL != "" {
		b.WriteString(accessClause(a.URL, today))
	}
	return collapsePeriods(b.String())
}

// FormatMonograph renders an e-book citation (ABNT NBR 6023:2025 - 7.1).
// The title carries the emphasis markup, the edition clause prefixes the
// imprint, and the fixed E-book marker is always present.
func FormatMonograph(m record.Monograph, today time.Time) string {
	var b strings.Builder
	b.WriteString(formatAuthors(m.MainAuthor, m.OtherAuthors))
	b.WriteString(". ")
	b.WriteString("<strong>" + m.Title + "</strong>")
	if m.Subtitle != "" {
		b.WriteString(": " + m.Subtitle)
	}
	b.WriteString(". ")
	if m.Edition != nil {
		fmt.Fprintf(&b, "%d. ed. ", *m.Edition)
	}
	fmt.Fprintf(&b, "%s: %s, %d.", m.Location, m.Publisher, m.Year)
	b.WriteString(" <i>E-book</i>.")
	if m.ISBN != "" {
		fmt.Fprintf(&b, " ISBN %s.", m.ISBN)
	}
	if m.URL != "" {
		b.WriteString(accessClause(m.URL, today))
	}
	return collapsePeriods(b.String())
}

package crossref

import (
	"encoding/json"
	"fmt"

	"github.com/gmoura/cita/internal/record"
)

// WorkType identifies the upstream classification of a work, driving which
// extraction rules apply.
type WorkType string

// Work types with extraction rules.
const (
	TypeJournalArticle     WorkType = "journal-article"
	TypeProceedingsArticle WorkType = "proceedings-article"
)

// WorkKind discriminates the arms of the Work union.
type WorkKind int

const (
	// WorkJournal holds a normalized journal article.
	WorkJournal WorkKind = iota
	// WorkProceedings holds a normalized proceedings article.
	WorkProceedings
	// WorkRaw holds the undecoded upstream message; produced only by
	// permissive dispatch for unrecognized work types.
	WorkRaw
)

// Work is the tagged result of normalizing one Crossref message. Exactly
// one arm matching Kind is populated.
type Work struct {
	Kind        WorkKind
	Journal     *record.JournalArticle
	Proceedings *record.ProceedingsArticle
	Raw         json.RawMessage
}

// extractors maps each recognized work type to its extraction function.
var extractors = map[WorkType]func(workMessage) (*Work, error){
	TypeJournalArticle: func(msg workMessage) (*Work, error) {
		a, err := normalizeJournalArticle(msg)
		if err != nil {
			return nil, err
		}
		return &Work{Kind: WorkJournal, Journal: &a}, nil
	},
	TypeProceedingsArticle: func(msg workMessage) (*Work, error) {
		a, err := normalizeProceedingsArticle(msg)
		if err != nil {
			return nil, err
		}
		return &Work{Kind: WorkProceedings, Proceedings: &a}, nil
	},
}

// Normalize routes a raw work message to the extractor for its declared
// type. An unrecognized type fails with UnsupportedTypeError.
func Normalize(message json.RawMessage) (*Work, error) {
	msg, err := decodeMessage(message)
	if err != nil {
		return nil, err
	}
	extract, ok := extractors[WorkType(msg.Type)]
	if !ok {
		return nil, &UnsupportedTypeError{Type: msg.Type}
	}
	return extract(msg)
}

// NormalizePermissive behaves like Normalize but passes the raw message
// through unmodified when the work type is unrecognized.
func NormalizePermissive(message json.RawMessage) (*Work, error) {
	msg, err := decodeMessage(message)
	if err != nil {
		return nil, err
	}
	extract, ok := extractors[WorkType(msg.Type)]
	if !ok {
		return &Work{Kind: WorkRaw, Raw: message}, nil
	}
	return extract(msg)
}

func decodeMessage(message json.RawMessage) (workMessage, error) {
	var msg workMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		return workMessage{}, fmt.Errorf("decoding work message: %w", err)
	}
	return msg, nil
}

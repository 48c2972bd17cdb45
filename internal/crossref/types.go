package crossref

import "encoding/json"

// workEnvelope is the top-level Crossref API response.
type workEnvelope struct {
	Status  string          `json:"status"`
	Message json.RawMessage `json:"message"`
}

// workMessage models the subset of the Crossref work schema the normalizer
// reads. The upstream schema is uncontrolled; every field here must be
// treated as possibly absent.
type workMessage struct {
	Type              string       `json:"type"`
	Author            []workAuthor `json:"author"`
	Title             []string     `json:"title"`
	Subtitle          []string     `json:"subtitle"`
	ContainerTitle    []string     `json:"container-title"`
	DOI               string       `json:"DOI"`
	URL               string       `json:"URL"`
	Link              []workLink   `json:"link"`
	PublisherLocation string       `json:"publisher-location"`
	Event             *workEvent   `json:"event"`
	Volume            string       `json:"volume"`
	Issue             string       `json:"issue"`
	Page              string       `json:"page"`
	Published         *workDate    `json:"published"`
	Created           *workDate    `json:"created"`
}

// workAuthor is one entry of the upstream author list. Person authors carry
// given/family; organizational authors carry only a combined name.
type workAuthor struct {
	Given    string `json:"given"`
	Family   string `json:"family"`
	Name     string `json:"name"`
	Sequence string `json:"sequence"`
}

type workLink struct {
	URL string `json:"URL"`
}

type workEvent struct {
	Location string `json:"location"`
}

// workDate wraps the date-parts encoding: [[year]], [[year, month]] or
// [[year, month, day]].
type workDate struct {
	DateParts [][]int `json:"date-parts"`
}

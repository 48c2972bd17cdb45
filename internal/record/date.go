package record

// PubDate represents a publication date with optional month and day.
// Upstream services report dates with variable precision, so a PubDate
// with only a year is valid and common.
type PubDate struct {
	Year  int `json:"year"`
	Month int `json:"month,omitempty"` // 1-12, 0 if unknown
	Day   int `json:"day,omitempty"`   // 1-31, 0 if unknown
}

// Full reports whether the date carries day precision.
func (d PubDate) Full() bool {
	return d.Month >= 1 && d.Month <= 12 && d.Day >= 1 && d.Day <= 31
}

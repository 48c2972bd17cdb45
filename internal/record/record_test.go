package record

import (
	"errors"
	"testing"
)

func TestNewJournalArticle_Validation(t *testing.T) {
	valid := JournalArticle{
		MainAuthor:   "John Smith",
		Title:        "A Study",
		JournalTitle: "Journal of Testing",
		Published:    PubDate{Year: 2023},
	}

	tests := []struct {
		name    string
		mutate  func(*JournalArticle)
		wantErr error
	}{
		{
			name:    "valid article",
			mutate:  func(a *JournalArticle) {},
			wantErr: nil,
		},
		{
			name:    "empty main author",
			mutate:  func(a *JournalArticle) { a.MainAuthor = "   " },
			wantErr: ErrEmptyMainAuthor,
		},
		{
			name:    "empty title",
			mutate:  func(a *JournalArticle) { a.Title = "" },
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "empty journal title",
			mutate:  func(a *JournalArticle) { a.JournalTitle = "" },
			wantErr: ErrEmptyContainer,
		},
		{
			name:    "zero year",
			mutate:  func(a *JournalArticle) { a.Published = PubDate{} },
			wantErr: ErrNoYear,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid
			tt.mutate(&a)
			_, err := NewJournalArticle(a)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewJournalArticle() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewJournalArticle_LocationDefaultsToSineLoco(t *testing.T) {
	a, err := NewJournalArticle(JournalArticle{
		MainAuthor:   "John Smith",
		Title:        "A Study",
		JournalTitle: "Journal of Testing",
		Published:    PubDate{Year: 2023},
	})
	if err != nil {
		t.Fatalf("NewJournalArticle() error = %v", err)
	}
	if a.Location != SineLoco {
		t.Errorf("Location = %q, want %q", a.Location, SineLoco)
	}
}

func TestNewJournalArticle_MainAuthorExcludedFromOthers(t *testing.T) {
	a, err := NewJournalArticle(JournalArticle{
		MainAuthor:   "John Smith",
		OtherAuthors: []string{"Jane Doe", "John Smith", "Ana Lima"},
		Title:        "A Study",
		JournalTitle: "Journal of Testing",
		Published:    PubDate{Year: 2023},
	})
	if err != nil {
		t.Fatalf("NewJournalArticle() error = %v", err)
	}
	want := []string{"Jane Doe", "Ana Lima"}
	if len(a.OtherAuthors) != len(want) {
		t.Fatalf("OtherAuthors = %v, want %v", a.OtherAuthors, want)
	}
	for i := range want {
		if a.OtherAuthors[i] != want[i] {
			t.Errorf("OtherAuthors[%d] = %q, want %q", i, a.OtherAuthors[i], want[i])
		}
	}
}

func TestNewProceedingsArticle_Validation(t *testing.T) {
	_, err := NewProceedingsArticle(ProceedingsArticle{
		MainAuthor: "John Smith",
		Title:      "A Study",
		Published:  PubDate{Year: 2023},
	})
	if !errors.Is(err, ErrEmptyContainer) {
		t.Errorf("error = %v, want %v", err, ErrEmptyContainer)
	}
}

func TestNewMonograph_Validation(t *testing.T) {
	valid := Monograph{
		MainAuthor: "ACME Press",
		Title:      "Annual Report",
		Publisher:  "ACME Press",
		Year:       2019,
	}

	tests := []struct {
		name    string
		mutate  func(*Monograph)
		wantErr error
	}{
		{
			name:    "valid monograph",
			mutate:  func(m *Monograph) {},
			wantErr: nil,
		},
		{
			name:    "empty publisher",
			mutate:  func(m *Monograph) { m.Publisher = "" },
			wantErr: ErrEmptyPublisher,
		},
		{
			name:    "zero year",
			mutate:  func(m *Monograph) { m.Year = 0 },
			wantErr: ErrNoYear,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid
			tt.mutate(&m)
			_, err := NewMonograph(m)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewMonograph() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPubDate_Full(t *testing.T) {
	tests := []struct {
		name string
		date PubDate
		want bool
	}{
		{"year only", PubDate{Year: 2023}, false},
		{"year and month", PubDate{Year: 2023, Month: 3}, false},
		{"full date", PubDate{Year: 2023, Month: 3, Day: 12}, true},
		{"month out of range", PubDate{Year: 2023, Month: 13, Day: 12}, false},
		{"day out of range", PubDate{Year: 2023, Month: 3, Day: 32}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.date.Full(); got != tt.want {
				t.Errorf("Full() = %v, want %v", got, tt.want)
			}
		})
	}
}

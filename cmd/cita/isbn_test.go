package main

import "testing"

func TestNormalizeISBN(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"valid isbn-13", "9780306406157", "9780306406157", false},
		{"hyphenated isbn-13", "978-0-306-40615-7", "9780306406157", false},
		{"valid isbn-10 upgrades", "0306406152", "9780306406157", false},
		{"hyphenated isbn-10", "0-306-40615-2", "9780306406157", false},
		{"bad isbn-13 checksum", "9780306406158", "", true},
		{"bad isbn-10 checksum", "0306406153", "", true},
		{"wrong length", "12345", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeISBN(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("normalizeISBN(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("normalizeISBN(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

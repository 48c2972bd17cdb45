package openlibrary

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const bookEnvelope = `{
	"ISBN:9780306406157": {
		"info_url": "https://openlibrary.org/books/OL123M",
		"details": {
			"authors": [{"name": "Jane Doe"}],
			"title": "Effective Testing",
			"publishers": ["ACME Press"],
			"publish_date": "March 1988",
			"revision": 2,
			"publish_places": ["New York"]
		}
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
}

func TestClient_GetBook(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/books" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("bibkeys") != "ISBN:9780306406157" || q.Get("jscmd") != "details" || q.Get("format") != "json" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		fmt.Fprint(w, bookEnvelope)
	})

	m, err := client.GetBook(context.Background(), "9780306406157")
	if err != nil {
		t.Fatalf("GetBook() error = %v", err)
	}
	if m.MainAuthor != "Jane Doe" {
		t.Errorf("MainAuthor = %q", m.MainAuthor)
	}
	if m.Year != 1988 {
		t.Errorf("Year = %d, want 1988", m.Year)
	}
	if m.Edition == nil || *m.Edition != 2 {
		t.Errorf("Edition = %v, want 2", m.Edition)
	}
	if m.Location != "New York" {
		t.Errorf("Location = %q", m.Location)
	}
}

func TestClient_GetBook_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	})

	_, err := client.GetBook(context.Background(), "9780306406157")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetBook() error = %v, want ErrNotFound", err)
	}
}

func TestClient_GetBook_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})

	_, err := client.GetBook(context.Background(), "9780306406157")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("GetBook() error = %v, want *StatusError", err)
	}
	if statusErr.Code != http.StatusServiceUnavailable {
		t.Errorf("Code = %d, want 503", statusErr.Code)
	}
}

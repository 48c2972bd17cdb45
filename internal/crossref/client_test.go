package crossref

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
}

func TestClient_GetWork(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/works/10.1%2Fxyz" && r.URL.Path != "/works/10.1/xyz" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		fmt.Fprintf(w, `{"status": "ok", "message": %s}`, journalMessage)
	})

	message, err := client.GetWork(context.Background(), "10.1/xyz")
	if err != nil {
		t.Fatalf("GetWork() error = %v", err)
	}

	work, err := Normalize(message)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if work.Kind != WorkJournal {
		t.Errorf("Kind = %v, want WorkJournal", work.Kind)
	}
}

func TestClient_GetWork_NotFound(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Resource not found.", http.StatusNotFound)
	})

	_, err := client.GetWork(context.Background(), "10.1/missing")
	if !IsNotFound(err) {
		t.Errorf("GetWork() error = %v, want not-found", err)
	}
}

func TestClient_GetWork_ServerError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.GetWork(context.Background(), "10.1/xyz")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("GetWork() error = %v, want *StatusError", err)
	}
	if statusErr.Code != http.StatusInternalServerError {
		t.Errorf("Code = %d, want 500", statusErr.Code)
	}
}

func TestClient_GetWork_EmptyEnvelope(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "ok"}`)
	})

	_, err := client.GetWork(context.Background(), "10.1/xyz")
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("GetWork() error = %v, want ErrInvalidResponse", err)
	}
}

func TestClient_Resolve_StrictVsPermissive(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"status": "ok", "message": %s}`, bookChapterMessage)
	})

	if _, err := client.Resolve(context.Background(), "10.1/chapter"); err == nil {
		t.Error("Resolve() accepted an unsupported type in strict mode")
	}

	work, err := client.ResolvePermissive(context.Background(), "10.1/chapter")
	if err != nil {
		t.Fatalf("ResolvePermissive() error = %v", err)
	}
	if work.Kind != WorkRaw {
		t.Errorf("Kind = %v, want WorkRaw", work.Kind)
	}
}

func TestClient_GetWork_ContextCancelled(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.GetWork(ctx, "10.1/xyz"); err == nil {
		t.Error("GetWork() ignored a cancelled context")
	}
}

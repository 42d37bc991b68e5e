package apiclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/traden-dev/traden/shared/api"
	"github.com/traden-dev/traden/shared/domain"
	internal_errors "github.com/traden-dev/traden/shared/errors"
)

func TestListThreads_QueryParams(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]domain.Thread{{Id: 1, Title: "first"}})
	}))
	defer server.Close()

	client := New(server.URL)
	threads, err := client.ListThreads("reply_count", "Allmänt", "hund")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/threads" {
		t.Errorf("expected path /api/threads, got %s", gotPath)
	}
	expectedQuery := "category=Allm%C3%A4nt&search=hund&sortBy=reply_count"
	if gotQuery != expectedQuery {
		t.Errorf("expected query %q, got %q", expectedQuery, gotQuery)
	}
	if len(threads) != 1 || threads[0].Title != "first" {
		t.Errorf("unexpected threads decoded: %+v", threads)
	}
}

func TestGetThread_NotFoundPreservesBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Thread not found"})
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.GetThread(42)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	apiErr, ok := err.(*internal_errors.ErrorWithStatusCode)
	if !ok {
		t.Fatalf("expected *ErrorWithStatusCode, got %T", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Thread not found" {
		t.Errorf("expected backend message preserved, got %q", apiErr.Message)
	}
}

func TestCreateThread_SendsBodyAndDecodesThread(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/threads" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body api.CreateThreadRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		if body.Title != "t" || body.Content != "c" || body.Category != "Djur" {
			t.Errorf("unexpected request body: %+v", body)
		}
		json.NewEncoder(w).Encode(domain.Thread{Id: 7, Title: body.Title, Category: body.Category})
	}))
	defer server.Close()

	client := New(server.URL)
	created, err := client.CreateThread(api.CreateThreadRequest{Title: "t", Content: "c", Category: "Djur"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Id != 7 {
		t.Errorf("expected created id 7, got %d", created.Id)
	}
}

func TestCreateReply_DecodesId(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/threads/3/replies" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(api.IdResponse{Id: 11})
	}))
	defer server.Close()

	client := New(server.URL)
	id, err := client.CreateReply(3, "hej")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 11 {
		t.Errorf("expected reply id 11, got %d", id)
	}
}

func TestDeleteReply_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Reply not found"})
	}))
	defer server.Close()

	client := New(server.URL)
	err := client.DeleteReply(99)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "Reply not found" {
		t.Errorf("expected 'Reply not found', got %q", err.Error())
	}
}

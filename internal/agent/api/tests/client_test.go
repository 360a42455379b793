package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-users-items-api/internal/agent/api"
)

func TestClient_PostJSON_SetsHeaders_AndDecodesResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected method POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("expected Content-Type application/json, got %q", ct)
		}
		if acc := r.Header.Get("Accept"); acc != "application/json" {
			t.Fatalf("expected Accept application/json, got %q", acc)
		}

		var got map[string]any
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if got["a"] != float64(1) {
			t.Fatalf("expected a=1, got %#v", got["a"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL + "/")

	var resp map[string]any
	if err := c.PostJSON("/x", map[string]any{"a": 1}, &resp); err != nil {
		t.Fatalf("PostJSON returned error: %v", err)
	}
	if resp["ok"] != true {
		t.Fatalf("expected ok=true, got %#v", resp["ok"])
	}
}

func TestClient_GetJSON_NoBody_NoContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "" {
			t.Fatalf("expected empty Content-Type, got %q", ct)
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	var resp []any
	if err := api.NewClient(srv.URL).GetJSON("/x", &resp); err != nil {
		t.Fatalf("GetJSON returned error: %v", err)
	}
	if resp == nil || len(resp) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", resp)
	}
}

func TestClient_Non2xx_ReturnsStatusErrorWithMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"User not found"}`))
	}))
	defer srv.Close()

	err := api.NewClient(srv.URL).GetJSON("/api/users/9", nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !api.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}

	se, ok := err.(*api.StatusError)
	if !ok {
		t.Fatalf("expected *api.StatusError, got %T", err)
	}
	if se.Message != "User not found" {
		t.Fatalf("expected message from body, got %q", se.Message)
	}
}

func TestClient_Non2xx_EmptyBody_UsesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := api.NewClient(srv.URL).GetJSON("/x", nil)
	if err == nil || !strings.Contains(err.Error(), "502 Bad Gateway") {
		t.Fatalf("expected status text in error, got %v", err)
	}
}

func TestClient_Non2xx_PlainTextBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := api.NewClient(srv.URL).PutJSON("/x", map[string]any{}, nil)
	if err == nil || err.Error() != "500: boom" {
		t.Fatalf("expected 500: boom, got %v", err)
	}
}

func TestClient_DeleteJSON_NoContent(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("expected DELETE, got %s", r.Method)
		}
		called = true
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := api.NewClient(srv.URL).DeleteJSON("/x"); err != nil {
		t.Fatalf("DeleteJSON returned error: %v", err)
	}
	if !called {
		t.Fatal("expected handler to be called")
	}
}

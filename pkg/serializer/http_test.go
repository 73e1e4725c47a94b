/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package serializer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, testReport{Project: "numpy", Status: "yes"})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var got testReport
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if got.Project != "numpy" {
		t.Errorf("Unexpected body: %+v", got)
	}
}

func TestRespondJSON_EncodingFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	// Channels cannot be JSON-encoded.
	RespondJSON(rec, http.StatusOK, map[string]any{"ch": make(chan int)})

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestHttpReader_Read(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`["numpy"]`))
	}))
	defer srv.Close()

	reader := NewHttpReader()
	data, err := reader.Read(srv.URL)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(data) != `["numpy"]` {
		t.Errorf("Unexpected data: %s", data)
	}
	if gotAgent != HttpReaderUserAgent {
		t.Errorf("User-Agent = %q, want %q", gotAgent, HttpReaderUserAgent)
	}
}

func TestHttpReader_ReadNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := NewHttpReader().Read(srv.URL); err == nil {
		t.Error("expected error for non-200 status")
	}
}

func TestHttpReader_ReadEmptyURL(t *testing.T) {
	if _, err := NewHttpReader().Read(""); err == nil {
		t.Error("expected error for empty URL")
	}
}

func TestHttpReader_Options(t *testing.T) {
	custom := &http.Client{Timeout: 2 * time.Second}
	reader := NewHttpReader(
		WithUserAgent("pyready-test/0.1"),
		WithClient(custom),
	)

	if reader.UserAgent != "pyready-test/0.1" {
		t.Errorf("UserAgent = %q", reader.UserAgent)
	}
	if reader.Client != custom {
		t.Error("custom client not applied")
	}

	reader = NewHttpReader(WithTotalTimeout(7 * time.Second))
	if reader.Client.Timeout != 7*time.Second {
		t.Errorf("Timeout = %v, want 7s", reader.Client.Timeout)
	}
}

func TestHttpReader_Download(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("numpy\nscipy\n"))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "projects.txt")
	if err := NewHttpReader().Download(srv.URL, path); err != nil {
		t.Fatalf("Download failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(content) != "numpy\nscipy\n" {
		t.Errorf("Unexpected content: %q", content)
	}
}

package export

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/abundis28/mintern/internal/api"
	"github.com/abundis28/mintern/internal/render"
)

func newTestBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/fetch-questions", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]api.Question{
			{ID: 1, Title: "How to find a mentor?", Body: "Details here.", AskerName: "ana", NumberOfAnswers: 1, NumberOfFollowers: 2},
			{ID: 2, Title: "Interview prep resources", AskerName: "lee"},
		})
	})
	mux.HandleFunc("/fetch-answers", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") != "1" {
			json.NewEncoder(w).Encode(map[string]api.Answer{})
			return
		}
		json.NewEncoder(w).Encode(map[string]api.Answer{
			"10": {ID: 10, Body: "Ask in the forum.", AuthorName: "sam", IsVerifiedMentor: true},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRunWritesArchive(t *testing.T) {
	backend := newTestBackend(t)
	outDir := t.TempDir()

	e := New(api.New(backend.URL, 2*time.Second), render.NewRenderer(0), outDir, "", "Mintern", NopReporter{})
	n, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != 2 {
		t.Errorf("exported %d questions, want 2", n)
	}

	index, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	if err != nil {
		t.Fatalf("reading index: %v", err)
	}
	if !strings.Contains(string(index), `href="q/1.html"`) {
		t.Error("index missing link to question page")
	}
	if !strings.Contains(string(index), "2 followers") {
		t.Error("index missing follower count")
	}

	page, err := os.ReadFile(filepath.Join(outDir, "q", "1.html"))
	if err != nil {
		t.Fatalf("reading question page: %v", err)
	}
	if !strings.Contains(string(page), "Ask in the forum.") {
		t.Error("question page missing answer")
	}
	if !strings.Contains(string(page), `href="../style.css"`) {
		t.Error("question page missing relative stylesheet link")
	}

	if _, err := os.Stat(filepath.Join(outDir, "style.css")); err != nil {
		t.Errorf("stylesheet not written: %v", err)
	}
}

func TestRunRendersIntroMarkdown(t *testing.T) {
	backend := newTestBackend(t)
	outDir := t.TempDir()
	intro := filepath.Join(t.TempDir(), "intro.md")
	if err := os.WriteFile(intro, []byte("# Welcome\n\nAn archive of **Mintern**.\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	e := New(api.New(backend.URL, 2*time.Second), render.NewRenderer(0), outDir, intro, "Mintern", nil)
	if _, err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	index, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), "<h1 id=\"welcome\">Welcome</h1>") {
		t.Error("intro heading not rendered from markdown")
	}
	if !strings.Contains(string(index), "<strong>Mintern</strong>") {
		t.Error("intro emphasis not rendered")
	}
}

func TestRunMissingIntroFileFails(t *testing.T) {
	backend := newTestBackend(t)
	e := New(api.New(backend.URL, 2*time.Second), render.NewRenderer(0), t.TempDir(), "/does/not/exist.md", "Mintern", nil)
	if _, err := e.Run(context.Background()); err == nil {
		t.Error("expected error for missing intro file")
	}
}

package signup

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/abundis28/mintern/internal/api"
	"github.com/go-chi/chi/v5"
)

type fakeBackend struct {
	auth    api.UserAuth
	mentee  api.SignupOptions
	mentor  api.SignupOptions
	submits map[string]url.Values
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		auth: api.UserAuth{IsUserLoggedIn: true, IsUserRegistered: false, AuthenticationURL: "/logout"},
		mentee: api.SignupOptions{
			Majors: []api.Option{{ID: 1, Name: "Computer Science"}, {ID: 2, Name: "Mathematics"}},
		},
		mentor: api.SignupOptions{
			Majors:      []api.Option{{ID: 1, Name: "Computer Science"}},
			SubjectTags: []api.Option{{ID: 10, Name: "Interviews"}, {ID: 11, Name: "Resumes"}},
		},
		submits: map[string]url.Values{},
	}
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/authentication", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(b.auth)
	})
	options := func(path string, opts *api.SignupOptions) {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				r.ParseForm()
				b.submits[path] = r.PostForm
				return
			}
			json.NewEncoder(w).Encode(opts)
		})
	}
	options("/signup", &b.mentee)
	options("/signup-mentor", &b.mentor)
	return mux
}

func newTestRouter(t *testing.T, b *fakeBackend) *chi.Mux {
	t.Helper()
	backend := httptest.NewServer(b.handler())
	t.Cleanup(backend.Close)
	c := NewController(api.New(backend.URL, 2*time.Second), "Mintern")
	r := chi.NewRouter()
	RegisterRoutes(r, c)
	return r
}

func TestMenteeFormListsMajors(t *testing.T) {
	b := newFakeBackend()
	rec := httptest.NewRecorder()
	newTestRouter(t, b).ServeHTTP(rec, httptest.NewRequest("GET", "/signup", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `<option value="1">Computer Science</option>`) {
		t.Error("majors missing from mentee form")
	}
	if !strings.Contains(body, `<option value="2">Mathematics</option>`) {
		t.Error("second major missing")
	}
	if strings.Contains(body, "experience") {
		t.Error("mentee form should not carry experience tags")
	}
}

func TestMentorFormListsTags(t *testing.T) {
	b := newFakeBackend()
	rec := httptest.NewRecorder()
	newTestRouter(t, b).ServeHTTP(rec, httptest.NewRequest("GET", "/signup-mentor", nil))

	body := rec.Body.String()
	if !strings.Contains(body, `name="experience" value="10"`) {
		t.Error("subject tag checkboxes missing from mentor form")
	}
	if !strings.Contains(body, `name="paragraph"`) {
		t.Error("application paragraph field missing")
	}
}

func TestSignupGates(t *testing.T) {
	tests := []struct {
		name string
		auth api.UserAuth
	}{
		{"logged out", api.UserAuth{IsUserLoggedIn: false}},
		{"already registered", api.UserAuth{IsUserLoggedIn: true, IsUserRegistered: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newFakeBackend()
			b.auth = tt.auth
			for _, target := range []string{"/signup", "/signup-mentor"} {
				rec := httptest.NewRecorder()
				newTestRouter(t, b).ServeHTTP(rec, httptest.NewRequest("GET", target, nil))
				if rec.Code != http.StatusSeeOther {
					t.Errorf("%s: status = %d, want 303", target, rec.Code)
				}
				if got := rec.Header().Get("Location"); got != "/" {
					t.Errorf("%s: Location = %q, want /", target, got)
				}
			}
		})
	}
}

func TestSubmitMenteeForwardsAndRedirects(t *testing.T) {
	b := newFakeBackend()
	router := newTestRouter(t, b)

	form := url.Values{
		"first-name": {"Ana"},
		"last-name":  {"Garcia"},
		"username":   {"anag"},
		"major":      {"1"},
	}
	req := httptest.NewRequest("POST", "/signup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/" {
		t.Errorf("Location = %q, want /", got)
	}
	sent := b.submits["/signup"]
	if sent.Get("username") != "anag" || sent.Get("major") != "1" {
		t.Errorf("backend received %v", sent)
	}
	if _, ok := sent["experience"]; ok {
		t.Error("mentee submit should not carry experience tags")
	}
}

func TestSubmitMentorForwardsTags(t *testing.T) {
	b := newFakeBackend()
	router := newTestRouter(t, b)

	form := url.Values{
		"first-name": {"Sam"},
		"last-name":  {"Lee"},
		"username":   {"samlee"},
		"major":      {"1"},
		"experience": {"10", "11"},
		"paragraph":  {"Five internships and two mentees."},
	}
	req := httptest.NewRequest("POST", "/signup-mentor", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	sent := b.submits["/signup-mentor"]
	if len(sent["experience"]) != 2 {
		t.Errorf("experience tags = %v, want both forwarded", sent["experience"])
	}
	if sent.Get("paragraph") != "Five internships and two mentees." {
		t.Errorf("paragraph = %q", sent.Get("paragraph"))
	}
}

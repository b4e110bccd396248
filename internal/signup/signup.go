// Package signup serves the mentee and mentor registration forms. Both pages
// are gated: they expect a logged-in session that has not registered yet, and
// redirect home otherwise.
package signup

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/abundis28/mintern/internal/api"
	"github.com/abundis28/mintern/internal/navbar"
	"github.com/abundis28/mintern/internal/web"
)

// Controller serves the signup pages against one backend API.
type Controller struct {
	api      *api.Client
	siteName string
}

// NewController creates a signup Controller.
func NewController(client *api.Client, siteName string) *Controller {
	return &Controller{api: client, siteName: siteName}
}

var menteeFormTemplate = template.Must(template.New("menteeForm").Parse(
	`<form class="post-form signup-form" method="POST" action="/signup">
  <h2>Join as a mentee</h2>
  <input type="text" name="first-name" placeholder="First name" required>
  <input type="text" name="last-name" placeholder="Last name" required>
  <input type="text" name="username" placeholder="Username" required>
  <select name="major" required>
    <option value="" disabled selected>Major</option>
{{- range .Majors}}
    <option value="{{.ID}}">{{.Name}}</option>
{{- end}}
  </select>
  <button type="submit">Sign up</button>
</form>
<p class="signup-switch">Want to mentor instead? <a href="/signup-mentor">Sign up as a mentor</a>.</p>
`))

var mentorFormTemplate = template.Must(template.New("mentorForm").Parse(
	`<form class="post-form signup-form" method="POST" action="/signup-mentor">
  <h2>Join as a mentor</h2>
  <input type="text" name="first-name" placeholder="First name" required>
  <input type="text" name="last-name" placeholder="Last name" required>
  <input type="text" name="username" placeholder="Username" required>
  <select name="major" required>
    <option value="" disabled selected>Major</option>
{{- range .Majors}}
    <option value="{{.ID}}">{{.Name}}</option>
{{- end}}
  </select>
  <fieldset class="experience-tags">
    <legend>Experience</legend>
{{- range .SubjectTags}}
    <label><input type="checkbox" name="experience" value="{{.ID}}"> {{.Name}}</label>
{{- end}}
  </fieldset>
  <textarea name="paragraph" placeholder="Tell approvers about your experience" required></textarea>
  <button type="submit">Apply as mentor</button>
</form>
<p class="signup-switch">Just looking for help? <a href="/signup">Sign up as a mentee</a>.</p>
`))

// gate enforces the signup precondition. It returns the session auth when
// the page may render, or writes a redirect and returns false.
func (c *Controller) gate(w http.ResponseWriter, r *http.Request) (*api.UserAuth, bool) {
	auth, err := c.api.WithSession(r).Authentication(r.Context())
	if err != nil {
		log.Printf("signup: fetching authentication: %v", err)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil, false
	}
	if !auth.IsUserLoggedIn || auth.IsUserRegistered {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil, false
	}
	return auth, true
}

// Mentee serves the mentee registration form.
func (c *Controller) Mentee(w http.ResponseWriter, r *http.Request) {
	auth, ok := c.gate(w, r)
	if !ok {
		return
	}

	opts, err := c.api.WithSession(r).SignupOptions(r.Context())
	if err != nil {
		log.Printf("signup: fetching mentee options: %v", err)
		opts = &api.SignupOptions{}
	}

	web.RenderPage(w, web.Page{
		Title:    "Sign up",
		SiteName: c.siteName,
		Navbar:   navbar.Fragment(auth),
		Content:  executeForm(menteeFormTemplate, opts),
	})
}

// Mentor serves the mentor registration form, which adds experience tags and
// an application paragraph for the approvers.
func (c *Controller) Mentor(w http.ResponseWriter, r *http.Request) {
	auth, ok := c.gate(w, r)
	if !ok {
		return
	}

	opts, err := c.api.WithSession(r).MentorSignupOptions(r.Context())
	if err != nil {
		log.Printf("signup: fetching mentor options: %v", err)
		opts = &api.SignupOptions{}
	}

	web.RenderPage(w, web.Page{
		Title:    "Become a mentor",
		SiteName: c.siteName,
		Navbar:   navbar.Fragment(auth),
		Content:  executeForm(mentorFormTemplate, opts),
	})
}

// SubmitMentee forwards the mentee form to the backend and redirects home,
// where the now-registered session renders the full forum.
func (c *Controller) SubmitMentee(w http.ResponseWriter, r *http.Request) {
	c.submit(w, r, false)
}

// SubmitMentor forwards the mentor form to the backend and redirects home.
// The application stays pending until the approvers decide.
func (c *Controller) SubmitMentor(w http.ResponseWriter, r *http.Request) {
	c.submit(w, r, true)
}

func (c *Controller) submit(w http.ResponseWriter, r *http.Request, mentor bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	form := url.Values{}
	for _, key := range []string{"first-name", "last-name", "username", "major"} {
		form.Set(key, strings.TrimSpace(r.PostForm.Get(key)))
	}
	if mentor {
		form["experience"] = r.PostForm["experience"]
		form.Set("paragraph", strings.TrimSpace(r.PostForm.Get("paragraph")))
	}

	if err := c.api.WithSession(r).Signup(r.Context(), form, mentor); err != nil {
		log.Printf("signup: submitting (mentor=%t): %v", mentor, err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func executeForm(tmpl *template.Template, opts *api.SignupOptions) template.HTML {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, opts); err != nil {
		panic(fmt.Sprintf("signup: executing %s template: %v", tmpl.Name(), err))
	}
	return template.HTML(buf.String())
}

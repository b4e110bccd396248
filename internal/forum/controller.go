// Package forum serves the forum listing and single-question pages, and
// handles the interactions they host: search, pagination, follow toggles and
// question/answer/comment submissions.
package forum

import (
	"context"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/abundis28/mintern/internal/api"
	"github.com/abundis28/mintern/internal/navbar"
	"github.com/abundis28/mintern/internal/render"
	"github.com/abundis28/mintern/internal/web"
)

// followTimeout bounds the detached backend call behind an optimistic
// follow toggle.
const followTimeout = 10 * time.Second

// Controller serves the forum pages against one backend API.
type Controller struct {
	api      *api.Client
	renderer *render.Renderer
	siteName string
}

// NewController creates a forum Controller.
func NewController(client *api.Client, renderer *render.Renderer, siteName string) *Controller {
	return &Controller{api: client, renderer: renderer, siteName: siteName}
}

// Index serves the paginated forum listing. The filter state lives entirely
// in the query string: no ?search renders the unfiltered listing, a search
// term renders the filtered one, and pagination keeps whichever filter is
// active. Content is replaced on every request, never appended.
func (c *Controller) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	client := c.api.WithSession(r)

	auth, err := client.Authentication(ctx)
	if err != nil {
		log.Printf("forum: fetching authentication: %v", err)
	}
	if target, redirect := navbar.Gate(auth); redirect {
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	page := parsePage(r.URL.Query().Get("page"))
	term := strings.TrimSpace(r.URL.Query().Get("search"))

	var fp *api.ForumPage
	if term == "" {
		fp, err = client.ForumPage(ctx, page)
	} else {
		fp, err = client.SearchQuestions(ctx, term, page)
	}

	var content template.HTML
	if err != nil {
		// The listing region stays empty and no error surfaces to the
		// user; the next page load re-syncs.
		log.Printf("forum: fetching listing (page %d, term %q): %v", page, term, err)
	} else {
		if term != "" {
			content += searchHeading(term)
		}
		content += c.renderer.ForumPage(fp, page, term)
	}

	if auth != nil && auth.IsUserLoggedIn {
		content += askFormFragment()
	}

	title := "Forum"
	if term != "" {
		title = "Search: " + term
	}

	web.RenderPage(w, web.Page{
		Title:      title,
		SiteName:   c.siteName,
		SearchTerm: term,
		Navbar:     navbar.Fragment(auth),
		Content:    content,
	})
}

// Question serves a single question with its answers and comment threads.
// A missing or unknown id redirects home instead of rendering an error.
func (c *Controller) Question(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	client := c.api.WithSession(r)

	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil || id <= 0 {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	auth, err := client.Authentication(ctx)
	if err != nil {
		log.Printf("forum: fetching authentication: %v", err)
	}
	if target, redirect := navbar.Gate(auth); redirect {
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	questions, err := client.FetchQuestions(ctx, id)
	if err != nil || len(questions) == 0 {
		if err != nil {
			log.Printf("forum: fetching question %d: %v", id, err)
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	question := questions[0]

	answers, err := client.FetchAnswers(ctx, id)
	if err != nil {
		// Answers region renders empty; the question itself still shows.
		log.Printf("forum: fetching answers for question %d: %v", id, err)
	}

	loggedIn := auth != nil && auth.IsUserLoggedIn

	content := c.renderer.Question(question, render.DetailContext)
	for _, a := range answers {
		content += c.renderer.Answer(a)
		if loggedIn {
			content += commentFormFragment(id, a.ID)
		}
	}
	if loggedIn {
		content += answerFormFragment(id)
	}

	web.RenderPage(w, web.Page{
		Title:    question.Title,
		SiteName: c.siteName,
		Navbar:   navbar.Fragment(auth),
		Content:  content,
	})
}

// followResponse is the JSON body returned by the follow endpoint: the
// optimistic patch computed from the submitted prior state.
type followResponse struct {
	QuestionID          int    `json:"questionId"`
	UserFollowsQuestion bool   `json:"userFollowsQuestion"`
	FollowerCount       int    `json:"followerCount"`
	FollowerLabel       string `json:"followerLabel"`
}

// Follow toggles a follower subscription. The patched state is computed from
// the submitted prior state and returned immediately; the backend call is
// fire-and-forget and is not rolled back on failure. Drift is bounded by the
// page view: a reload re-syncs from the server.
func (c *Controller) Follow(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	questionID, err := strconv.Atoi(r.PostForm.Get("question-id"))
	if err != nil || questionID <= 0 {
		http.Error(w, "invalid question id", http.StatusBadRequest)
		return
	}
	followers, _ := strconv.Atoi(r.PostForm.Get("followers"))
	wasFollowing, _ := strconv.ParseBool(r.PostForm.Get("following"))

	action := api.ActionFollow
	count := followers + 1
	if wasFollowing {
		action = api.ActionUnfollow
		count = followers - 1
		if count < 0 {
			count = 0
		}
	}

	session := c.api.WithSession(r)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), followTimeout)
		defer cancel()
		if err := session.ToggleFollower(ctx, action, questionID); err != nil {
			log.Printf("forum: %s question %d: %v", action, questionID, err)
		}
	}()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(followResponse{
		QuestionID:          questionID,
		UserFollowsQuestion: !wasFollowing,
		FollowerCount:       count,
		FollowerLabel:       render.Pluralize(count, "follower"),
	})
}

// PostQuestion forwards a new-question form to the backend and returns to
// the forum listing.
func (c *Controller) PostQuestion(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(r.PostForm.Get("question-title"))
	body := r.PostForm.Get("question-body")
	if title != "" {
		if err := c.api.WithSession(r).PostQuestion(r.Context(), title, body); err != nil {
			log.Printf("forum: posting question: %v", err)
		}
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// PostAnswer forwards a new-answer form to the backend and returns to the
// question page.
func (c *Controller) PostAnswer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	questionID, err := strconv.Atoi(r.PostForm.Get("question-id"))
	if err != nil || questionID <= 0 {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	body := strings.TrimSpace(r.PostForm.Get("answer-body"))
	if body != "" {
		if err := c.api.WithSession(r).PostAnswer(r.Context(), questionID, body); err != nil {
			log.Printf("forum: posting answer to question %d: %v", questionID, err)
		}
	}
	http.Redirect(w, r, "/question?id="+strconv.Itoa(questionID), http.StatusSeeOther)
}

// PostComment forwards a comment form to the backend and returns to the
// question page. The form is a plain submission, not intercepted by script.
func (c *Controller) PostComment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	questionID, err := strconv.Atoi(r.PostForm.Get("question-id"))
	if err != nil || questionID <= 0 {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	answerID, err := strconv.Atoi(r.PostForm.Get("answer-id"))
	if err != nil {
		http.Redirect(w, r, "/question?id="+strconv.Itoa(questionID), http.StatusSeeOther)
		return
	}

	body := strings.TrimSpace(r.PostForm.Get("comment-body"))
	if body != "" {
		if err := c.api.WithSession(r).PostComment(r.Context(), questionID, answerID, body); err != nil {
			log.Printf("forum: posting comment on answer %d: %v", answerID, err)
		}
	}
	http.Redirect(w, r, "/question?id="+strconv.Itoa(questionID), http.StatusSeeOther)
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

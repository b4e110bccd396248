package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// FetchAll is the question id that selects every question.
const FetchAll = -1

// Follower toggle actions accepted by the backend.
const (
	ActionFollow   = "follow"
	ActionUnfollow = "unfollow"
)

// Client talks to the backend forum API. The backend owns sessions,
// persistence and email; this client only moves JSON across HTTP. Calls are
// never retried and responses are never cached: every page load re-syncs
// from the server.
type Client struct {
	baseURL string
	http    *http.Client
	cookie  string
}

// New creates a Client for the API at baseURL. A zero timeout disables the
// client-side deadline.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// WithSession returns a copy of the client that forwards the session cookies
// of the given browser request, so the backend sees the viewer's identity.
func (c *Client) WithSession(r *http.Request) *Client {
	dup := *c
	dup.cookie = r.Header.Get("Cookie")
	return &dup
}

// BaseURL returns the backend base URL the client was created with.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s response: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("posting %s: %w", path, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	// Redirects count as success: the backend answers form posts with one.
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}
	return nil
}

// Authentication fetches the current session status.
func (c *Client) Authentication(ctx context.Context) (*UserAuth, error) {
	var auth UserAuth
	if err := c.get(ctx, "/authentication", nil, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// FetchQuestions fetches questions by id. Passing FetchAll returns every
// question; a specific id returns a single-element slice, or an empty one
// when the question does not exist.
func (c *Client) FetchQuestions(ctx context.Context, id int) ([]Question, error) {
	query := url.Values{"id": {strconv.Itoa(id)}}
	var questions []Question
	if err := c.get(ctx, "/fetch-questions", query, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// ForumPage fetches one page of the unfiltered forum listing.
func (c *Client) ForumPage(ctx context.Context, page int) (*ForumPage, error) {
	query := url.Values{
		"id":   {strconv.Itoa(FetchAll)},
		"page": {strconv.Itoa(page)},
	}
	var fp ForumPage
	if err := c.get(ctx, "/question", query, &fp); err != nil {
		return nil, err
	}
	return &fp, nil
}

// SearchQuestions fetches one page of questions matching the search term.
func (c *Client) SearchQuestions(ctx context.Context, term string, page int) (*ForumPage, error) {
	query := url.Values{
		"inputString": {term},
		"page":        {strconv.Itoa(page)},
	}
	var fp ForumPage
	if err := c.get(ctx, "/search-question", query, &fp); err != nil {
		return nil, err
	}
	return &fp, nil
}

// FetchAnswers fetches the answers (with nested comments) for a question.
// The backend serializes them as a mapping keyed by answer id; the result
// is returned in ascending id order, matching the posting order.
func (c *Client) FetchAnswers(ctx context.Context, questionID int) ([]Answer, error) {
	query := url.Values{"id": {strconv.Itoa(questionID)}}
	var byID map[string]Answer
	if err := c.get(ctx, "/fetch-answers", query, &byID); err != nil {
		return nil, err
	}

	answers := make([]Answer, 0, len(byID))
	for _, a := range byID {
		answers = append(answers, a)
	}
	sort.Slice(answers, func(i, j int) bool { return answers[i].ID < answers[j].ID })
	return answers, nil
}

// Notifications fetches the pending notifications for the current session,
// in server order.
func (c *Client) Notifications(ctx context.Context) ([]Notification, error) {
	var notifications []Notification
	if err := c.get(ctx, "/notification", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotification records a notification-producing event on the backend.
func (c *Client) MarkNotification(ctx context.Context, notifType string, elementID int) error {
	return c.postForm(ctx, "/notification", url.Values{
		"type":              {notifType},
		"modifiedElementId": {strconv.Itoa(elementID)},
	})
}

// SignupOptions fetches the option lists for the mentee signup form.
func (c *Client) SignupOptions(ctx context.Context) (*SignupOptions, error) {
	var opts SignupOptions
	if err := c.get(ctx, "/signup", nil, &opts); err != nil {
		return nil, err
	}
	return &opts, nil
}

// MentorSignupOptions fetches the option lists for the mentor signup form,
// including subject tags.
func (c *Client) MentorSignupOptions(ctx context.Context) (*SignupOptions, error) {
	var opts SignupOptions
	if err := c.get(ctx, "/signup-mentor", nil, &opts); err != nil {
		return nil, err
	}
	return &opts, nil
}

// ToggleFollower follows or unfollows a question for the current session.
func (c *Client) ToggleFollower(ctx context.Context, action string, questionID int) error {
	if action != ActionFollow && action != ActionUnfollow {
		return fmt.Errorf("invalid follower action %q", action)
	}
	return c.postForm(ctx, "/follower-system", url.Values{
		"type":        {action},
		"question-id": {strconv.Itoa(questionID)},
	})
}

// PostComment forwards a comment form submission to the backend.
func (c *Client) PostComment(ctx context.Context, questionID, answerID int, body string) error {
	return c.postForm(ctx, "/post-comment", url.Values{
		"comment-body": {body},
		"question-id":  {strconv.Itoa(questionID)},
		"answer-id":    {strconv.Itoa(answerID)},
	})
}

// PostQuestion forwards a new-question form submission to the backend.
func (c *Client) PostQuestion(ctx context.Context, title, body string) error {
	return c.postForm(ctx, "/question", url.Values{
		"question-title": {title},
		"question-body":  {body},
	})
}

// PostAnswer forwards a new-answer form submission to the backend.
func (c *Client) PostAnswer(ctx context.Context, questionID int, body string) error {
	return c.postForm(ctx, "/post-answer", url.Values{
		"question-id": {strconv.Itoa(questionID)},
		"answer-body": {body},
	})
}

// Signup forwards a signup form submission to the backend. The mentor flag
// selects the mentor variant of the endpoint.
func (c *Client) Signup(ctx context.Context, form url.Values, mentor bool) error {
	path := "/signup"
	if mentor {
		path = "/signup-mentor"
	}
	return c.postForm(ctx, path, form)
}

// MentorEvidence fetches the approval record for the mentor with the given
// user id. The record's UserID field identifies the viewer.
func (c *Client) MentorEvidence(ctx context.Context, mentorID int) (*MentorEvidence, error) {
	query := url.Values{"id": {strconv.Itoa(mentorID)}}
	var evidence MentorEvidence
	if err := c.get(ctx, "/mentor-approval", query, &evidence); err != nil {
		return nil, err
	}
	return &evidence, nil
}

// SubmitApproval posts an approve/reject decision for a mentor application.
func (c *Client) SubmitApproval(ctx context.Context, mentorID int, approved bool) error {
	return c.postForm(ctx, "/mentor-approval", url.Values{
		"id":         {strconv.Itoa(mentorID)},
		"isApproved": {strconv.FormatBool(approved)},
	})
}

// Package render builds HTML fragments for forum records. Every renderer is
// a pure function of its input: no fetches, no shared state, same fragment
// for the same record.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/abundis28/mintern/internal/api"
)

// Context selects between the compact listing presentation and the full
// detail presentation of a question.
type Context int

const (
	// ListContext renders a question as a forum listing entry: body
	// collapsed to one line and truncated to the preview length.
	ListContext Context = iota
	// DetailContext renders the full question: line breaks collapsed,
	// no truncation.
	DetailContext
)

// DefaultPreviewLength is the listing-context truncation threshold.
const DefaultPreviewLength = 80

// verifiedMark is appended to the author name of verified mentors.
const verifiedMark = " ✓"

// Renderer builds fragments with a fixed preview length.
type Renderer struct {
	previewLength int
}

// NewRenderer creates a Renderer. A non-positive previewLength falls back
// to DefaultPreviewLength.
func NewRenderer(previewLength int) *Renderer {
	if previewLength <= 0 {
		previewLength = DefaultPreviewLength
	}
	return &Renderer{previewLength: previewLength}
}

// Pluralize renders a count with its noun, singular only when the count is
// exactly one: "1 follower", "0 followers", "2 answers".
func Pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

var newlineCollapser = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// CollapseBody replaces every line break in body with a single space.
func CollapseBody(body string) string {
	return newlineCollapser.Replace(body)
}

// Preview collapses line breaks and truncates body to limit runes, appending
// an ellipsis. Bodies at or under the limit are returned collapsed but whole.
func Preview(body string, limit int) string {
	collapsed := CollapseBody(body)
	runes := []rune(collapsed)
	if len(runes) <= limit {
		return collapsed
	}
	return string(runes[:limit]) + "…"
}

// AuthorLabel renders an author name, marking verified mentors.
func AuthorLabel(name string, verifiedMentor bool) string {
	if verifiedMentor {
		return name + verifiedMark
	}
	return name
}

var questionTemplate = template.Must(template.New("question").Parse(`<article class="question{{if .Detail}} question-detail{{end}}" id="question-{{.ID}}">
  <h3 class="question-title">{{if .Detail}}{{.Title}}{{else}}<a href="/question?id={{.ID}}">{{.Title}}</a>{{end}}</h3>
  {{if .Body}}<p class="question-body">{{.Body}}</p>{{end}}
  <p class="question-meta">Asked by {{.AskerName}} on {{.DateTime}}</p>
  <p class="question-stats">
    <button type="button" class="follow-toggle{{if .Following}} following{{end}}" data-question-id="{{.ID}}" data-followers="{{.Followers}}" data-following="{{.Following}}">{{if .Following}}&#9733;{{else}}&#9734;{{end}}</button>
    <span class="follower-count" id="follower-count-{{.ID}}">{{.FollowerLabel}}</span>
    <span class="answer-count">{{.AnswerLabel}}</span>
  </p>
</article>
`))

type questionView struct {
	ID            int
	Title         string
	Body          string
	AskerName     string
	DateTime      string
	Followers     int
	Following     bool
	FollowerLabel string
	AnswerLabel   string
	Detail        bool
}

// Question renders a question fragment for the given context.
func (r *Renderer) Question(q api.Question, ctx Context) template.HTML {
	body := CollapseBody(q.Body)
	if ctx == ListContext {
		body = Preview(q.Body, r.previewLength)
	}

	return execute(questionTemplate, questionView{
		ID:            q.ID,
		Title:         q.Title,
		Body:          body,
		AskerName:     q.AskerName,
		DateTime:      q.DateTime,
		Followers:     q.NumberOfFollowers,
		Following:     q.UserFollowsQuestion,
		FollowerLabel: Pluralize(q.NumberOfFollowers, "follower"),
		AnswerLabel:   Pluralize(q.NumberOfAnswers, "answer"),
		Detail:        ctx == DetailContext,
	})
}

var answerTemplate = template.Must(template.New("answer").Parse(`<div class="answer" id="answer-{{.ID}}">
  <p class="answer-body">{{.Body}}</p>
  <p class="answer-meta">{{.Author}} on {{.DateTime}}</p>
  {{if .Comments}}<div class="comments">{{range .Comments}}{{.}}{{end}}</div>{{end}}
</div>
`))

type answerView struct {
	ID       int
	Body     string
	Author   string
	DateTime string
	Comments []template.HTML
}

// Answer renders an answer with its comment thread. Null comment entries
// from the wire are skipped.
func (r *Renderer) Answer(a api.Answer) template.HTML {
	var comments []template.HTML
	for _, c := range a.Comments {
		if c == nil {
			continue
		}
		comments = append(comments, r.Comment(*c))
	}

	return execute(answerTemplate, answerView{
		ID:       a.ID,
		Body:     CollapseBody(a.Body),
		Author:   AuthorLabel(a.AuthorName, a.IsVerifiedMentor),
		DateTime: a.DateTime,
		Comments: comments,
	})
}

var commentTemplate = template.Must(template.New("comment").Parse(`<div class="comment">
  <span class="comment-body">{{.Body}}</span>
  <span class="comment-meta">&mdash; {{.Author}}, {{.DateTime}}</span>
</div>
`))

// Comment renders a single comment.
func (r *Renderer) Comment(c api.Comment) template.HTML {
	return execute(commentTemplate, struct {
		Body     string
		Author   string
		DateTime string
	}{
		Body:     CollapseBody(c.Body),
		Author:   AuthorLabel(c.AuthorName, c.IsVerifiedMentor),
		DateTime: c.DateTime,
	})
}

var notificationTemplate = template.Must(template.New("notification").Parse(`<li class="notification"><a href="{{.URL}}">{{.Message}}</a> <span class="notification-time">{{.Timestamp}}</span></li>
`))

// Notification renders one notification dropdown entry.
func (r *Renderer) Notification(n api.Notification) template.HTML {
	return execute(notificationTemplate, n)
}

func execute(tmpl *template.Template, data interface{}) template.HTML {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Templates are static and views are plain structs; an execute
		// failure is a programming error.
		panic(err)
	}
	return template.HTML(buf.String())
}

package forum

import (
	"bytes"
	"fmt"
	"html/template"
)

var searchHeadingTemplate = template.Must(template.New("searchHeading").Parse(
	`<h2 class="search-heading">Results for &ldquo;{{.}}&rdquo;</h2>
`))

var askFormTemplate = template.Must(template.New("askForm").Parse(
	`<form class="post-form" method="POST" action="/question">
  <h3>Ask a question</h3>
  <input type="text" name="question-title" placeholder="Title" required>
  <textarea name="question-body" placeholder="Add details (optional)"></textarea>
  <button type="submit">Post question</button>
</form>
`))

var answerFormTemplate = template.Must(template.New("answerForm").Parse(
	`<form class="post-form" method="POST" action="/answer">
  <h3>Your answer</h3>
  <input type="hidden" name="question-id" value="{{.}}">
  <textarea name="answer-body" required></textarea>
  <button type="submit">Post answer</button>
</form>
`))

var commentFormTemplate = template.Must(template.New("commentForm").Parse(
	`<form class="post-form comment-form" method="POST" action="/comment">
  <input type="hidden" name="question-id" value="{{.QuestionID}}">
  <input type="hidden" name="answer-id" value="{{.AnswerID}}">
  <input type="text" name="comment-body" placeholder="Add a comment" required>
  <button type="submit">Comment</button>
</form>
`))

func searchHeading(term string) template.HTML {
	var buf bytes.Buffer
	if err := searchHeadingTemplate.Execute(&buf, term); err != nil {
		panic(fmt.Sprintf("forum: executing search heading template: %v", err))
	}
	return template.HTML(buf.String())
}

func askFormFragment() template.HTML {
	var buf bytes.Buffer
	if err := askFormTemplate.Execute(&buf, nil); err != nil {
		panic(fmt.Sprintf("forum: executing ask form template: %v", err))
	}
	return template.HTML(buf.String())
}

func answerFormFragment(questionID int) template.HTML {
	var buf bytes.Buffer
	if err := answerFormTemplate.Execute(&buf, questionID); err != nil {
		panic(fmt.Sprintf("forum: executing answer form template: %v", err))
	}
	return template.HTML(buf.String())
}

func commentFormFragment(questionID, answerID int) template.HTML {
	var buf bytes.Buffer
	data := struct {
		QuestionID int
		AnswerID   int
	}{questionID, answerID}
	if err := commentFormTemplate.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("forum: executing comment form template: %v", err))
	}
	return template.HTML(buf.String())
}

// Package export writes a static HTML archive of the forum: an index page
// with every question and one page per question with its answers and
// comments. The archive is self-contained and needs no backend to browse.
package export

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strconv"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/abundis28/mintern/internal/api"
	"github.com/abundis28/mintern/internal/render"
	"github.com/abundis28/mintern/internal/web"
)

// Exporter fetches the full forum and writes it as static pages.
type Exporter struct {
	api      *api.Client
	renderer *render.Renderer
	outDir   string
	intro    string
	siteName string
	reporter Reporter
}

// New creates an Exporter. introFile may be empty; when set it is rendered
// from markdown at the top of the index page.
func New(client *api.Client, renderer *render.Renderer, outDir, introFile, siteName string, reporter Reporter) *Exporter {
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Exporter{
		api:      client,
		renderer: renderer,
		outDir:   outDir,
		intro:    introFile,
		siteName: siteName,
		reporter: reporter,
	}
}

// archiveData holds the data for one archive page.
type archiveData struct {
	Title    string
	SiteName string
	BasePath string
	Content  template.HTML
}

var archiveTemplate = template.Must(template.New("archive").Parse(
	`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} - {{.SiteName}}</title>
<link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body>
<header class="topbar"><a class="brand" href="{{.BasePath}}index.html">{{.SiteName}}</a></header>
<main>
{{.Content}}
</main>
</body>
</html>
`))

var indexEntryTemplate = template.Must(template.New("indexEntry").Parse(
	`<article class="question">
  <h2><a href="q/{{.ID}}.html">{{.Title}}</a></h2>
  <p class="question-meta">Asked by {{.AskerName}} on {{.DateTime}} &middot; {{.Followers}} &middot; {{.Answers}}</p>
</article>
`))

// Run writes the archive and returns the number of question pages written.
func (e *Exporter) Run(ctx context.Context) (int, error) {
	questions, err := e.api.FetchQuestions(ctx, api.FetchAll)
	if err != nil {
		return 0, fmt.Errorf("fetching questions: %w", err)
	}

	if err := os.MkdirAll(filepath.Join(e.outDir, "q"), 0o755); err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(e.outDir, "style.css"), []byte(web.StyleCSS()), 0o644); err != nil {
		return 0, fmt.Errorf("writing stylesheet: %w", err)
	}

	e.reporter.Start(len(questions) + 1)
	defer e.reporter.Finish()

	intro, err := e.renderIntro()
	if err != nil {
		return 0, err
	}
	if err := e.writeIndex(questions, intro); err != nil {
		return 0, err
	}
	e.reporter.Update(1, "index")

	for i, q := range questions {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := e.writeQuestion(ctx, q); err != nil {
			return i, fmt.Errorf("exporting question %d: %w", q.ID, err)
		}
		e.reporter.Update(i+2, q.Title)
	}
	return len(questions), nil
}

// renderIntro converts the configured intro markdown to HTML. No intro file
// configured means no intro section.
func (e *Exporter) renderIntro() (template.HTML, error) {
	if e.intro == "" {
		return "", nil
	}
	src, err := os.ReadFile(e.intro)
	if err != nil {
		return "", fmt.Errorf("reading intro file: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("rendering intro markdown: %w", err)
	}
	return template.HTML(`<section class="archive-intro">` + buf.String() + `</section>`), nil
}

func (e *Exporter) writeIndex(questions []api.Question, intro template.HTML) error {
	content := intro
	for _, q := range questions {
		entry := struct {
			ID        int
			Title     string
			AskerName string
			DateTime  string
			Followers string
			Answers   string
		}{
			ID:        q.ID,
			Title:     q.Title,
			AskerName: q.AskerName,
			DateTime:  q.DateTime,
			Followers: render.Pluralize(q.NumberOfFollowers, "follower"),
			Answers:   render.Pluralize(q.NumberOfAnswers, "answer"),
		}
		var buf bytes.Buffer
		if err := indexEntryTemplate.Execute(&buf, entry); err != nil {
			return fmt.Errorf("rendering index entry %d: %w", q.ID, err)
		}
		content += template.HTML(buf.String())
	}
	return e.writePage(filepath.Join(e.outDir, "index.html"), archiveData{
		Title:    "Forum archive",
		SiteName: e.siteName,
		BasePath: "",
		Content:  content,
	})
}

func (e *Exporter) writeQuestion(ctx context.Context, q api.Question) error {
	answers, err := e.api.FetchAnswers(ctx, q.ID)
	if err != nil {
		return fmt.Errorf("fetching answers: %w", err)
	}

	content := e.renderer.Question(q, render.DetailContext)
	for _, a := range answers {
		content += e.renderer.Answer(a)
	}

	path := filepath.Join(e.outDir, "q", strconv.Itoa(q.ID)+".html")
	return e.writePage(path, archiveData{
		Title:    q.Title,
		SiteName: e.siteName,
		BasePath: "../",
		Content:  content,
	})
}

func (e *Exporter) writePage(path string, data archiveData) error {
	var buf bytes.Buffer
	if err := archiveTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

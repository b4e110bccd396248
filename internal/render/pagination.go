package render

import (
	"fmt"
	"html/template"
	"net/url"
	"strconv"

	"github.com/abundis28/mintern/internal/api"
)

var paginationTemplate = template.Must(template.New("pagination").Parse(`<nav class="pagination">
  {{if .PrevURL}}<a class="page-control prev" href="{{.PrevURL}}">&laquo; Previous</a>{{else}}<span class="page-control prev disabled">&laquo; Previous</span>{{end}}
  <span class="page-indicator">{{.Indicator}}</span>
  {{if .NextURL}}<a class="page-control next" href="{{.NextURL}}">Next &raquo;</a>{{else}}<span class="page-control next disabled">Next &raquo;</span>{{end}}
</nav>
`))

type paginationView struct {
	PrevURL   string
	NextURL   string
	Indicator string
}

// PageURL builds the forum listing URL for the given page, carrying the
// search term when one is active. An empty term routes back to the
// unfiltered listing.
func PageURL(page int, searchTerm string) string {
	query := url.Values{"page": {strconv.Itoa(page)}}
	if searchTerm != "" {
		query.Set("search", searchTerm)
	}
	return "/?" + query.Encode()
}

const emptyListingFragment = template.HTML(`<p class="empty-forum">No questions to show yet.</p>
`)

// ForumPage renders one page of questions followed by the pagination
// controls. The previous control is non-interactive when the page has no
// predecessor, and symmetrically for next; each active control is a single
// link, so a pagination click issues exactly one request. A listing with no
// questions at all renders a placeholder instead of a zero-page indicator.
func (r *Renderer) ForumPage(fp *api.ForumPage, pageNumber int, searchTerm string) template.HTML {
	if len(fp.PageQuestions) == 0 && fp.NumberOfPages == 0 {
		return emptyListingFragment
	}

	var out template.HTML
	for _, q := range fp.PageQuestions {
		out += r.Question(q, ListContext)
	}

	view := paginationView{
		Indicator: fmt.Sprintf("Page %d of %d", pageNumber, fp.NumberOfPages),
	}
	if fp.PreviousPage {
		view.PrevURL = PageURL(pageNumber-1, searchTerm)
	}
	if fp.NextPage {
		view.NextURL = PageURL(pageNumber+1, searchTerm)
	}

	return out + execute(paginationTemplate, view)
}

package approval

import (
	"log"
	"net/http"
	"strconv"

	"github.com/abundis28/mintern/internal/api"
	"github.com/abundis28/mintern/internal/navbar"
	"github.com/abundis28/mintern/internal/web"
)

// Controller serves the approval and verification pages against one backend
// API.
type Controller struct {
	api      *api.Client
	siteName string
}

// NewController creates an approval Controller.
func NewController(client *api.Client, siteName string) *Controller {
	return &Controller{api: client, siteName: siteName}
}

// load resolves the request to an approval record and its message variant.
// Any failure mode collapses to VariantNone so the callers share one
// redirect path.
func (c *Controller) load(r *http.Request) (*api.UserAuth, *api.MentorEvidence, int, Variant) {
	mentorID, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil || mentorID <= 0 {
		return nil, nil, 0, VariantNone
	}

	client := c.api.WithSession(r)
	auth, err := client.Authentication(r.Context())
	if err != nil {
		log.Printf("approval: fetching authentication: %v", err)
		return nil, nil, 0, VariantNone
	}
	if !auth.IsUserLoggedIn {
		return nil, nil, 0, VariantNone
	}

	evidence, err := client.MentorEvidence(r.Context(), mentorID)
	if err != nil {
		log.Printf("approval: fetching evidence for mentor %d: %v", mentorID, err)
		return nil, nil, 0, VariantNone
	}
	return auth, evidence, mentorID, Select(evidence, mentorID)
}

// Review serves the approval page. Visitors who are neither the applying
// mentor nor an assigned approver are redirected home.
func (c *Controller) Review(w http.ResponseWriter, r *http.Request) {
	auth, evidence, mentorID, variant := c.load(r)
	if variant == VariantNone {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	web.RenderPage(w, web.Page{
		Title:    "Mentor approval",
		SiteName: c.siteName,
		Navbar:   navbar.Fragment(auth),
		Content:  Message(variant, evidence, mentorID),
	})
}

// Verification serves the applying mentor's own status page. Approver
// variants do not render here; approvers use the approval page.
func (c *Controller) Verification(w http.ResponseWriter, r *http.Request) {
	auth, evidence, mentorID, variant := c.load(r)
	if !variant.SelfOnly() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	web.RenderPage(w, web.Page{
		Title:    "Application status",
		SiteName: c.siteName,
		Navbar:   navbar.Fragment(auth),
		Content:  Message(variant, evidence, mentorID),
	})
}

// Decide records an approve/reject decision and reloads the approval page,
// which re-fetches the record and reflects the new state.
func (c *Controller) Decide(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	mentorID, err := strconv.Atoi(r.PostForm.Get("id"))
	if err != nil || mentorID <= 0 {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	decision := r.PostForm.Get("decision")
	if decision != "approve" && decision != "reject" {
		http.Error(w, "invalid decision", http.StatusBadRequest)
		return
	}

	if err := c.api.WithSession(r).SubmitApproval(r.Context(), mentorID, decision == "approve"); err != nil {
		log.Printf("approval: submitting decision for mentor %d: %v", mentorID, err)
	}
	http.Redirect(w, r, "/approval?id="+strconv.Itoa(mentorID), http.StatusSeeOther)
}

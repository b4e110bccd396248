// Package approval renders the mentor application status pages. The message
// shown is a total function of the viewer's relation to the application:
// the applying mentor sees their own status, an assigned approver sees the
// review state, and anyone else is redirected away.
package approval

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/abundis28/mintern/internal/api"
)

// Variant identifies which status message an approval record produces for
// its viewer. VariantNone means the viewer has no role in the application.
type Variant int

const (
	VariantNone Variant = iota
	VariantSelfPending
	VariantSelfApproved
	VariantSelfRejected
	VariantNeedsReview
	VariantDecisionRecorded
	VariantFinalApproved
	VariantFinalRejected
)

// Select maps an approval record to the message variant its viewer should
// see. The record's UserID identifies the viewer; mentorID is the applicant
// the record was fetched for. Exactly one variant matches any record.
func Select(e *api.MentorEvidence, mentorID int) Variant {
	if e == nil {
		return VariantNone
	}
	if e.UserID == mentorID {
		switch {
		case e.IsApproved:
			return VariantSelfApproved
		case e.IsRejected:
			return VariantSelfRejected
		default:
			return VariantSelfPending
		}
	}
	if !e.IsApprover {
		return VariantNone
	}
	switch {
	case e.IsApproved:
		return VariantFinalApproved
	case e.IsRejected:
		return VariantFinalRejected
	case e.HasReviewed:
		return VariantDecisionRecorded
	default:
		return VariantNeedsReview
	}
}

// SelfOnly reports whether the variant belongs to the applying mentor's own
// status page.
func (v Variant) SelfOnly() bool {
	return v == VariantSelfPending || v == VariantSelfApproved || v == VariantSelfRejected
}

var messageTemplate = template.Must(template.New("approvalMessage").Parse(
	`<section class="approval-message">
  <p>{{.Text}}</p>
{{- if .ShowEvidence}}
  <blockquote class="approval-evidence">{{.Paragraph}}</blockquote>
  <form class="approval-actions" method="POST" action="/approval">
    <input type="hidden" name="id" value="{{.MentorID}}">
    <button type="submit" name="decision" value="approve">Approve</button>
    <button type="submit" name="decision" value="reject">Reject</button>
  </form>
{{- end}}
</section>
`))

// Message renders the status fragment for a variant. VariantNeedsReview is
// the only variant with controls: it shows the application paragraph and the
// approve/reject form.
func Message(v Variant, e *api.MentorEvidence, mentorID int) template.HTML {
	data := struct {
		Text         string
		ShowEvidence bool
		Paragraph    string
		MentorID     int
	}{MentorID: mentorID}

	switch v {
	case VariantSelfPending:
		data.Text = "Your mentor application is being reviewed. You will be notified once the approvers decide."
	case VariantSelfApproved:
		data.Text = "Congratulations, your mentor application was approved. Your answers now carry the verified mentor mark."
	case VariantSelfRejected:
		data.Text = "Your mentor application was not approved this time. You can keep using the forum as a mentee."
	case VariantNeedsReview:
		data.Text = fmt.Sprintf("%s applied to become a mentor. Review their application below.", e.MentorUsername)
		data.ShowEvidence = true
		data.Paragraph = e.Paragraph
	case VariantDecisionRecorded:
		data.Text = fmt.Sprintf("Your decision on %s's application is recorded. The outcome is pending the remaining approvers.", e.MentorUsername)
	case VariantFinalApproved:
		data.Text = fmt.Sprintf("%s's mentor application has been approved.", e.MentorUsername)
	case VariantFinalRejected:
		data.Text = fmt.Sprintf("%s's mentor application has been rejected.", e.MentorUsername)
	default:
		return ""
	}

	var buf bytes.Buffer
	if err := messageTemplate.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("approval: executing message template: %v", err))
	}
	return template.HTML(buf.String())
}

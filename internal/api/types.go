package api

// Question is a forum question as returned by the backend. Follower and
// answer counts are viewer-relative: userFollowsQuestion reflects the
// session the request was made with.
type Question struct {
	ID                  int    `json:"id"`
	Title               string `json:"title"`
	Body                string `json:"body,omitempty"`
	AskerName           string `json:"askerName"`
	DateTime            string `json:"dateTime"`
	NumberOfFollowers   int    `json:"numberOfFollowers"`
	NumberOfAnswers     int    `json:"numberOfAnswers"`
	UserFollowsQuestion bool   `json:"userFollowsQuestion"`
}

// Answer is one answer to a question, with its comment thread nested.
// Comment entries may be null and must be filtered before rendering.
type Answer struct {
	ID               int        `json:"id"`
	Body             string     `json:"body"`
	AuthorName       string     `json:"authorName"`
	DateTime         string     `json:"dateTime"`
	IsVerifiedMentor bool       `json:"isVerifiedMentor"`
	Comments         []*Comment `json:"commentList"`
}

// Comment is a single comment under an answer.
type Comment struct {
	Body             string `json:"body"`
	AuthorName       string `json:"authorName"`
	DateTime         string `json:"dateTime"`
	IsVerifiedMentor bool   `json:"isVerifiedMentor"`
}

// Notification is one pending notification for the signed-in user.
// Notifications are ephemeral: re-fetched per page load, never cached.
type Notification struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
}

// UserAuth describes the current session. It drives the navbar and the
// gated-page redirects and is fetched fresh on every page load.
type UserAuth struct {
	Email             string `json:"email"`
	IsUserLoggedIn    bool   `json:"isUserLoggedIn"`
	IsUserRegistered  bool   `json:"isUserRegistered"`
	AuthenticationURL string `json:"authenticationUrl"`
}

// MentorEvidence is the approval record for a mentor application. UserID
// identifies the viewer; the mentor under review is addressed by the id
// the record was fetched with.
type MentorEvidence struct {
	UserID         int    `json:"userId"`
	MentorUsername string `json:"mentorUsername"`
	Paragraph      string `json:"paragraph"`
	IsApprover     bool   `json:"isApprover"`
	IsApproved     bool   `json:"isApproved"`
	IsRejected     bool   `json:"isRejected"`
	HasReviewed    bool   `json:"hasReviewed"`
}

// ForumPage is one page of the paginated forum listing.
type ForumPage struct {
	PageQuestions []Question `json:"pageQuestions"`
	PreviousPage  bool       `json:"previousPage"`
	NextPage      bool       `json:"nextPage"`
	NumberOfPages int        `json:"numberOfPages"`
}

// Option is a selectable entry in the signup forms (a major or a subject tag).
type Option struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SignupOptions carries the option lists for the signup forms. SubjectTags
// is only populated for the mentor variant.
type SignupOptions struct {
	Majors      []Option `json:"majors"`
	SubjectTags []Option `json:"subjectTags"`
}

// Package navbar renders the authentication area of the top bar. It owns
// only its own fragment; page content is never touched from here.
package navbar

import (
	"bytes"
	"html/template"

	"github.com/abundis28/mintern/internal/api"
)

// SignupRoute is where logged-in but unregistered users are sent before any
// gated page renders.
const SignupRoute = "/signup"

var loggedInTemplate = template.Must(template.New("loggedin").Parse(`<span class="bell" id="notification-bell">&#128276;</span>
<ul class="notification-dropdown" id="notification-dropdown"></ul>
<a class="auth-button" href="{{.AuthenticationURL}}">Log Out</a>
`))

var loggedOutTemplate = template.Must(template.New("loggedout").Parse(`<a class="auth-button primary" href="{{.AuthenticationURL}}">Sign Up</a>
<a class="auth-button" href="{{.AuthenticationURL}}">Log In</a>
`))

// Fragment renders the navbar authentication controls. There are exactly two
// paths: logged-in sessions get the logout control and the notification
// bell, logged-out sessions get signup and login controls, all bound to the
// authentication URL the session payload supplied. A nil auth renders the
// logged-out path with no destination, leaving the region inert rather than
// broken when the session fetch failed.
func Fragment(auth *api.UserAuth) template.HTML {
	if auth == nil {
		auth = &api.UserAuth{}
	}

	tmpl := loggedOutTemplate
	if auth.IsUserLoggedIn {
		tmpl = loggedInTemplate
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, auth); err != nil {
		panic(err)
	}
	return template.HTML(buf.String())
}

// Gate reports whether the viewer must be redirected before anything
// renders. A logged-in but unregistered user is always sent to the signup
// route first; the redirect wins over every widget update.
func Gate(auth *api.UserAuth) (target string, redirect bool) {
	if auth != nil && auth.IsUserLoggedIn && !auth.IsUserRegistered {
		return SignupRoute, true
	}
	return "", false
}

package navbar

import (
	"strings"
	"testing"

	"github.com/abundis28/mintern/internal/api"
)

func TestFragmentLoggedIn(t *testing.T) {
	auth := &api.UserAuth{
		IsUserLoggedIn:    true,
		IsUserRegistered:  true,
		AuthenticationURL: "/logout?u=ada",
	}

	html := string(Fragment(auth))

	if !strings.Contains(html, "Log Out") {
		t.Error("expected logout control")
	}
	if !strings.Contains(html, `href="/logout?u=ada"`) {
		t.Error("expected logout bound to the session's authentication URL")
	}
	if !strings.Contains(html, `id="notification-bell"`) {
		t.Error("expected notification bell for logged-in users")
	}
	if strings.Contains(html, "Sign Up") {
		t.Error("signup affordance must be removed when logged in")
	}
}

func TestFragmentLoggedOut(t *testing.T) {
	auth := &api.UserAuth{AuthenticationURL: "/login?next=/"}

	html := string(Fragment(auth))

	if !strings.Contains(html, "Sign Up") || !strings.Contains(html, "Log In") {
		t.Error("expected signup and login controls")
	}
	if got := strings.Count(html, `href="/login?next=/"`); got != 2 {
		t.Errorf("expected both controls bound to the authentication URL, got %d", got)
	}
	if strings.Contains(html, "notification-bell") {
		t.Error("logged-out users must not see the notification bell")
	}
}

func TestFragmentNilAuth(t *testing.T) {
	html := string(Fragment(nil))
	if !strings.Contains(html, "Log In") {
		t.Error("expected logged-out rendering for unknown session state")
	}
}

func TestGate(t *testing.T) {
	tests := []struct {
		name     string
		auth     *api.UserAuth
		redirect bool
	}{
		{"logged out", &api.UserAuth{}, false},
		{"logged in registered", &api.UserAuth{IsUserLoggedIn: true, IsUserRegistered: true}, false},
		{"logged in unregistered", &api.UserAuth{IsUserLoggedIn: true}, true},
		{"nil auth", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, redirect := Gate(tt.auth)
			if redirect != tt.redirect {
				t.Errorf("Gate() redirect = %v, want %v", redirect, tt.redirect)
			}
			if redirect && target != SignupRoute {
				t.Errorf("Gate() target = %q, want %q", target, SignupRoute)
			}
		})
	}
}

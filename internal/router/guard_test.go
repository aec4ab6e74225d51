package router

import (
	"testing"
	"time"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

func sessionFor(userType domain.UserType) *domain.AuthSession {
	return &domain.AuthSession{
		User:      &domain.Profile{ID: "user-1", UserType: userType},
		Token:     "token",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestResolve(t *testing.T) {
	operator := sessionFor(domain.UserTypeOperator)
	sponsor := sessionFor(domain.UserTypeSponsor)

	tests := []struct {
		name         string
		path         string
		sess         *domain.AuthSession
		wantAllowed  bool
		wantRedirect string
	}{
		// Guest-only routes
		{"login signed out", PathLogin, nil, true, ""},
		{"login as operator goes home", PathLogin, operator, false, PathDashboard},
		{"login as sponsor goes to sponsor home", PathLogin, sponsor, false, PathSponsorDashboard},
		{"signup as operator goes home", PathSignup, operator, false, PathDashboard},

		// Operator routes
		{"dashboard signed out", PathDashboard, nil, false, PathLogin},
		{"dashboard as operator", PathDashboard, operator, true, ""},
		{"dashboard as sponsor", PathDashboard, sponsor, false, PathLogin},
		{"events as operator", PathEvents, operator, true, ""},
		{"sponsor search as sponsor", PathSponsorSearch, sponsor, false, PathLogin},
		{"saved sponsors as operator", PathSavedSponsors, operator, true, ""},

		// Sponsor routes
		{"sponsor dashboard as sponsor", PathSponsorDashboard, sponsor, true, ""},
		{"sponsor dashboard as operator", PathSponsorDashboard, operator, false, PathLogin},
		{"applications signed out", PathApplications, nil, false, PathLogin},

		// Any-role routes
		{"browse signed out", PathBrowseEvents, nil, true, ""},
		{"browse as sponsor", PathBrowseEvents, sponsor, true, ""},
		{"profile signed out", PathProfile, nil, false, PathLogin},
		{"profile as operator", PathProfile, operator, true, ""},
		{"sponsor detail as sponsor", PathSponsorDetail, sponsor, true, ""},

		// Unknown paths
		{"unknown path", "/nonsense", operator, false, PathLogin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, redirect := Resolve(tt.path, tt.sess)
			if allowed != tt.wantAllowed {
				t.Errorf("Resolve(%q) allowed = %v, want %v", tt.path, allowed, tt.wantAllowed)
			}
			if redirect != tt.wantRedirect {
				t.Errorf("Resolve(%q) redirect = %q, want %q", tt.path, redirect, tt.wantRedirect)
			}
		})
	}
}

func TestGuard_NilUserCountsAsSignedOut(t *testing.T) {
	sess := &domain.AuthSession{Token: "token", ExpiresAt: time.Now().Add(time.Hour)}

	allowed, redirect := Guard(Routes[PathDashboard], sess)
	if allowed {
		t.Error("session without a user should not pass an auth guard")
	}
	if redirect != PathLogin {
		t.Errorf("redirect = %q, want %q", redirect, PathLogin)
	}
}

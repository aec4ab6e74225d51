// Package router describes the client-side navigation surface: the route
// table and the synchronous guard that decides whether a navigation may
// proceed.
package router

import (
	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

// Route paths
const (
	PathLogin            = "/login"
	PathSignup           = "/signup"
	PathDashboard        = "/dashboard"
	PathEvents           = "/events"
	PathEventDetail      = "/events/:id"
	PathBrowseEvents     = "/browse"
	PathSponsorSearch    = "/sponsors"
	PathSponsorDetail    = "/sponsors/:id"
	PathSavedSponsors    = "/sponsors/saved"
	PathSponsorDashboard = "/sponsor-dashboard"
	PathApplications     = "/applications"
	PathProfile          = "/profile"
)

// RouteMeta declares the access rules of a route
type RouteMeta struct {
	// RequiresAuth means the route is only reachable with a live session
	RequiresAuth bool
	// RequiresGuest means the route is only reachable signed out
	RequiresGuest bool
	// UserType restricts the route to one account role, "" allows any
	UserType domain.UserType
}

// Routes is the navigation table
var Routes = map[string]RouteMeta{
	PathLogin:            {RequiresGuest: true},
	PathSignup:           {RequiresGuest: true},
	PathDashboard:        {RequiresAuth: true, UserType: domain.UserTypeOperator},
	PathEvents:           {RequiresAuth: true, UserType: domain.UserTypeOperator},
	PathEventDetail:      {RequiresAuth: true, UserType: domain.UserTypeOperator},
	PathSponsorSearch:    {RequiresAuth: true, UserType: domain.UserTypeOperator},
	PathSavedSponsors:    {RequiresAuth: true, UserType: domain.UserTypeOperator},
	PathSponsorDashboard: {RequiresAuth: true, UserType: domain.UserTypeSponsor},
	PathApplications:     {RequiresAuth: true, UserType: domain.UserTypeSponsor},
	PathBrowseEvents:     {},
	PathSponsorDetail:    {RequiresAuth: true},
	PathProfile:          {RequiresAuth: true},
}

// homeFor returns the landing route for a signed-in account
func homeFor(userType domain.UserType) string {
	if userType == domain.UserTypeSponsor {
		return PathSponsorDashboard
	}
	return PathDashboard
}

// Guard decides a navigation synchronously from route meta and the current
// session. It redirects rather than erroring: unauthenticated access to a
// protected route lands on login, and a signed-in user visiting a
// guest-only route lands on their role's home.
func Guard(meta RouteMeta, sess *domain.AuthSession) (allowed bool, redirect string) {
	signedIn := sess != nil && sess.User != nil

	if meta.RequiresAuth && !signedIn {
		return false, PathLogin
	}
	if meta.RequiresGuest && signedIn {
		return false, homeFor(sess.User.UserType)
	}
	if meta.UserType != "" && signedIn && sess.User.UserType != meta.UserType {
		return false, PathLogin
	}
	return true, ""
}

// Resolve guards a navigation by path. Unknown paths redirect to login.
func Resolve(path string, sess *domain.AuthSession) (allowed bool, redirect string) {
	meta, ok := Routes[path]
	if !ok {
		return false, PathLogin
	}
	return Guard(meta, sess)
}

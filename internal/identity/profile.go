// Package identity models the claims attached to a verified credential
// and the fallback rules for turning them into a human-readable name.
package identity

import "strings"

// FallbackDisplayName is shown when no claim yields a usable name.
const FallbackDisplayName = "User"

// Profile carries the identity claims of an authenticated caller.
// Subject is the stable user identifier the storage prefix derives from;
// the rest are optional display attributes supplied by the identity
// provider.
type Profile struct {
	Subject    string
	Name       string
	GivenName  string
	FamilyName string
	Username   string
	LoginID    string
	Email      string
}

// DisplayName resolves the name shown for the user. Precedence: the
// user's saved custom name, the full-name claim, given plus family name,
// the account username, the login id, then FallbackDisplayName.
func (p Profile) DisplayName(custom string) string {
	if name := strings.TrimSpace(custom); name != "" {
		return name
	}
	if p.Name != "" {
		return p.Name
	}
	if full := strings.TrimSpace(p.GivenName + " " + p.FamilyName); full != "" {
		return full
	}
	if p.Username != "" {
		return p.Username
	}
	if p.LoginID != "" {
		return p.LoginID
	}
	return FallbackDisplayName
}

// EmailAddress returns the user's email, falling back to the login id,
// which is usually the address they signed in with. Empty when unknown.
func (p Profile) EmailAddress() string {
	if p.Email != "" {
		return p.Email
	}
	return p.LoginID
}

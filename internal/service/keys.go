package service

import "regexp"

// settingsObject is the per-user settings document name. It shares the
// user prefix with notes and must be skipped when enumerating them.
const settingsObject = "settings.json"

var nonKeyChars = regexp.MustCompile(`[^a-zA-Z0-9-]`)

// sanitizeKeyPart reduces an identifier to the alphanumeric-and-hyphen
// subset so it cannot escape the storage prefix it is embedded in.
func sanitizeKeyPart(s string) string {
	return nonKeyChars.ReplaceAllString(s, "")
}

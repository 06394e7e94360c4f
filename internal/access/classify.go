package access

import "strings"

// Class is the protection level of a request path.
type Class string

const (
	ClassPublic        Class = "public"
	ClassAuthenticated Class = "authenticated"
	ClassAdmin         Class = "admin"
)

var (
	adminPrefixes   = []string{"/admin", "/api/admin"}
	accountPrefixes = []string{"/account", "/api/account"}
)

// Classify maps a path to its protection class. A prefix matches the exact path
// or anything below it, so /administrator stays public.
func Classify(path string) Class {
	if path == "" {
		path = "/"
	}
	if matchesAny(path, adminPrefixes) {
		return ClassAdmin
	}
	if matchesAny(path, accountPrefixes) {
		return ClassAuthenticated
	}
	return ClassPublic
}

func matchesAny(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

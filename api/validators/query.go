package validators

import "net/http"

// QueryString returns the trimmed value of key, cut to maxLen characters.
func QueryString(r *http.Request, key string, maxLen int) string {
	return SanitizeString(r.URL.Query().Get(key), maxLen)
}

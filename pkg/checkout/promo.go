package checkout

import "strings"

var promoCodes = map[string]struct{}{
	"MODEST10":  {},
	"WELCOME10": {},
}

// NormalizePromoCode upper-cases input the way the promo field does on entry.
func NormalizePromoCode(code string) string {
	return strings.ToUpper(code)
}

// IsKnownPromoCode reports whether an already normalized code is on the allow-list.
func IsKnownPromoCode(code string) bool {
	_, ok := promoCodes[code]
	return ok
}

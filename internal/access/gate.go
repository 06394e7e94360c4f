package access

import "net/url"

const (
	signInPath = "/sign-in"
	homePath   = "/"
)

// Decision is the gate's verdict for one request. An empty Redirect means allow.
type Decision struct {
	Class    Class
	Redirect string
}

func (d Decision) Allowed() bool {
	return d.Redirect == ""
}

// Evaluate decides whether a request for path may proceed.
func Evaluate(path string, session *Session) Decision {
	class := Classify(path)
	switch class {
	case ClassAdmin:
		if session == nil {
			return Decision{Class: class, Redirect: SignInURL(path)}
		}
		if !session.IsAdmin() {
			return Decision{Class: class, Redirect: homePath}
		}
	case ClassAuthenticated:
		if session == nil {
			return Decision{Class: class, Redirect: SignInURL(path)}
		}
	}
	return Decision{Class: class}
}

// SignInURL is the sign-in page that returns to path afterwards.
func SignInURL(path string) string {
	q := url.Values{}
	q.Set("redirect_url", path)
	return signInPath + "?" + q.Encode()
}

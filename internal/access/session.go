package access

import (
	"net/http"
	"strings"

	pkgAuth "github.com/angelmondragon/modeststyle-backend/pkg/auth"
	"github.com/angelmondragon/modeststyle-backend/pkg/config"
	"github.com/angelmondragon/modeststyle-backend/pkg/enums"
)

// Session is the signed-in identity behind a request.
type Session struct {
	Subject string
	Email   string
	Role    enums.MemberRole
	// Token is the raw credential, forwarded to the backend on proxied calls.
	Token string
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == enums.MemberRoleAdmin
}

// SessionResolver extracts the caller's session, if any.
type SessionResolver interface {
	Resolve(r *http.Request) (*Session, bool)
}

// JWTResolver accepts HS256 session tokens from the Authorization header or the
// session cookie. Invalid tokens are treated as no session.
type JWTResolver struct {
	cfg config.JWTConfig
}

func NewJWTResolver(cfg config.JWTConfig) *JWTResolver {
	return &JWTResolver{cfg: cfg}
}

func (j *JWTResolver) Resolve(r *http.Request) (*Session, bool) {
	token := bearerToken(r.Header.Get("Authorization"))
	if token == "" && j.cfg.CookieName != "" {
		if cookie, err := r.Cookie(j.cfg.CookieName); err == nil {
			token = strings.TrimSpace(cookie.Value)
		}
	}
	if token == "" {
		return nil, false
	}

	claims, err := pkgAuth.ParseSessionToken(j.cfg, token)
	if err != nil {
		return nil, false
	}
	// Unknown roles resolve to an authenticated session without admin rights.
	role, _ := enums.ParseMemberRole(claims.Role)
	return &Session{
		Subject: claims.Subject,
		Email:   claims.Email,
		Role:    role,
		Token:   token,
	}, true
}

func bearerToken(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) < 7 || !strings.EqualFold(raw[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(raw[7:])
}

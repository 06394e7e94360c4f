package controllers

import (
	"net/http"

	"github.com/angelmondragon/modeststyle-backend/api/middleware"
	pkgerrors "github.com/angelmondragon/modeststyle-backend/pkg/errors"
)

// clientSession returns the anonymous session id issued by the ClientSession middleware.
func clientSession(r *http.Request) (string, error) {
	id := middleware.ClientSessionFromContext(r.Context())
	if id == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "client session required")
	}
	return id, nil
}

// accessToken returns the bearer token of the signed-in caller.
func accessToken(r *http.Request) (string, error) {
	session := middleware.AccessSessionFromContext(r.Context())
	if session == nil || session.Token == "" {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in required")
	}
	return session.Token, nil
}

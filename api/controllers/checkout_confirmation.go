package controllers

import (
	"net/http"

	"github.com/angelmondragon/modeststyle-backend/api/responses"
	"github.com/angelmondragon/modeststyle-backend/internal/confirmation"
)

// CheckoutSuccess renders the confirmation from order_id and pending; nothing is fetched.
func CheckoutSuccess() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, confirmation.FromQuery(r.URL.Query()))
	}
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/HarmanGIT10/Ironic-gym-backend/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message"`
}

// SafeUser is the identity shape returned by the auth endpoints.
type SafeUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthEnvelope wraps signup/sign-in responses.
type AuthEnvelope struct {
	Message string    `json:"message"`
	User    *SafeUser `json:"user,omitempty"`
	Token   string    `json:"token,omitempty"`
	IsAdmin bool      `json:"isAdmin,omitempty"`
}

// CheckoutEnvelope wraps the Stripe session response.
type CheckoutEnvelope struct {
	URL string `json:"url"`
}

func toSafeUser(u *domain.User) *SafeUser {
	if u == nil {
		return nil
	}
	return &SafeUser{ID: u.UserID, Name: u.Name, Email: u.Email}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// httpError maps a wrapped domain sentinel to its HTTP status. Anything not
// recognised is a 500.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

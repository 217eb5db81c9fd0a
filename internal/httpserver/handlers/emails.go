package handlers

import (
	"net/http"

	"github.com/resfinder/resfinder/internal/apperr"
	"github.com/resfinder/resfinder/internal/directory"
	"github.com/resfinder/resfinder/internal/httpserver/deps"
	"github.com/resfinder/resfinder/internal/logger"
)

type emailRequest struct {
	Email string `json:"email" validate:"required"`
}

// ListEmails serves the current members of one email collection.
func ListEmails(d deps.Deps, set *directory.EmailSet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := set.List()
		if err != nil {
			d.Logger.Error("failed to list email set",
				logger.String("collection", set.Key()),
				logger.Error(err))
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// AddEmail adds a member via the supplied operation. The admin route
// passes the cascading AddAdmin here; others pass their set's Add.
func AddEmail(d deps.Deps, add func(string) ([]string, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req emailRequest
		if err := decodeValidate(r, &req); err != nil {
			writeError(w, err)
			return
		}
		list, err := add(req.Email)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// RemoveEmail removes a member. Removal is idempotent: unknown emails
// are not an error.
func RemoveEmail(d deps.Deps, set *directory.EmailSet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req emailRequest
		if err := decode(r, &req); err != nil {
			writeError(w, err)
			return
		}
		list, err := set.Remove(req.Email)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// RemoveAdmin is the one email mutation behind the authorization gate.
func RemoveAdmin(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := r.Header.Get(d.AdminHeader)
		ok, err := d.Directory.IsAdmin(caller)
		if err != nil {
			writeError(w, err)
			return
		}
		if !ok {
			writeError(w, apperr.Forbidden())
			return
		}

		var req emailRequest
		if err := decode(r, &req); err != nil {
			writeError(w, err)
			return
		}
		list, err := d.Directory.Admins.Remove(req.Email)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

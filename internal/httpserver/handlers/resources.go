package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/resfinder/resfinder/internal/directory"
	"github.com/resfinder/resfinder/internal/httpserver/deps"
	"github.com/resfinder/resfinder/internal/logger"
)

func ListResources(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := d.Directory.Resources.List()
		if err != nil {
			d.Logger.Error("failed to list resources", logger.Error(err))
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func CreateResource(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in directory.NewResource
		if err := decode(r, &in); err != nil {
			writeError(w, err)
			return
		}

		rec, err := d.Directory.Resources.Create(in, r.Header.Get(d.AdminHeader))
		if err != nil {
			writeError(w, err)
			return
		}
		d.Logger.Info("resource created",
			logger.String("id", rec.ID),
			logger.String("name", rec.Name))
		writeJSON(w, http.StatusCreated, rec)
	}
}

func UpdateResource(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var patch directory.ResourcePatch
		if err := decode(r, &patch); err != nil {
			writeError(w, err)
			return
		}

		rec, err := d.Directory.Resources.Update(id, patch, r.Header.Get(d.AdminHeader))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

type deleteResponse struct {
	OK      bool   `json:"ok"`
	Deleted string `json:"deleted"`
}

func DeleteResource(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := d.Directory.Resources.Delete(id, r.Header.Get(d.AdminHeader)); err != nil {
			writeError(w, err)
			return
		}
		d.Logger.Info("resource deleted", logger.String("id", id))
		writeJSON(w, http.StatusOK, deleteResponse{OK: true, Deleted: id})
	}
}

package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/unclebandit/fabricator-bff/internal/errors"
	"github.com/unclebandit/fabricator-bff/internal/service"
	"github.com/unclebandit/fabricator-bff/internal/session"
)

// PhotoController serves the photo endpoints of one record kind. Param is the
// chi URL parameter holding the record id.
type PhotoController struct {
	PhotoService *service.PhotoService
	Kind         string
	Param        string
}

func (c *PhotoController) AddPhoto(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, appErrors.ErrUnauthorized)
		return
	}
	var body struct {
		Image string `json:"image"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	photo, err := c.PhotoService.AddPhoto(r.Context(), s.ID, s.ExpiresAt, c.Kind, chi.URLParam(r, c.Param), body.Image)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, photo)
}

func (c *PhotoController) ListPhotos(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, appErrors.ErrUnauthorized)
		return
	}
	photos := c.PhotoService.ListPhotos(s.ID, c.Kind, chi.URLParam(r, c.Param))
	writeJSON(w, http.StatusOK, map[string]any{
		"data":  photos,
		"count": len(photos),
	})
}

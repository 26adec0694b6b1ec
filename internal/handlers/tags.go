package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/conduit-core/internal/logger"
)

// TagLister defines the interface that the service must implement.
type TagLister interface {
	Tags(ctx context.Context) ([]string, error)
}

// NewTagsHandler returns an HTTP handler for listing all known tags.
// @Summary List tags
// @Tags tags
// @Produce json
// @Success 200 {object} handlers.TagsBody "Distinct tags across all articles"
// @Router /tags [get]
func NewTagsHandler(svc TagLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := svc.Tags(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		writeJSON(w, http.StatusOK, TagsBody{Tags: tags})
	}
}

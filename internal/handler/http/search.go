package http

import (
	"net/http"

	"github.com/MKhiriev/go-coach-notes/models"
)

func (h *Handler) searchNotes(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.searchNotes"

	actor, err := requestActor(r)
	if err != nil {
		writeServiceError(w, r, err, fn)
		return
	}

	filters, err := searchFilters(r.URL.Query())
	if err != nil {
		writeServiceError(w, r, err, fn)
		return
	}

	result, err := h.services.NoteService.SearchNotes(r.Context(), actor, filters)
	if err != nil {
		writeServiceError(w, r, err, fn)
		return
	}

	writeResult(w, r, result, http.StatusOK, fn)
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.suggest"

	actor, err := requestActor(r)
	if err != nil {
		writeServiceError(w, r, err, fn)
		return
	}

	query := r.URL.Query()
	limit, err := queryInt(query, "limit")
	if err != nil {
		writeServiceError(w, r, err, fn)
		return
	}

	suggestions, err := h.services.NoteService.Suggest(r.Context(), actor, models.SuggestRequest{
		Prefix: query.Get("prefix"),
		Limit:  limit,
	})
	if err != nil {
		writeServiceError(w, r, err, fn)
		return
	}

	writeResult(w, r, suggestions, http.StatusOK, fn)
}

func (h *Handler) popularTags(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.popularTags"

	actor, err := requestActor(r)
	if err != nil {
		writeServiceError(w, r, err, fn)
		return
	}

	limit, err := queryInt(r.URL.Query(), "limit")
	if err != nil {
		writeServiceError(w, r, err, fn)
		return
	}

	tags, err := h.services.NoteService.PopularTags(r.Context(), actor, models.PopularTagsRequest{Limit: limit})
	if err != nil {
		writeServiceError(w, r, err, fn)
		return
	}

	writeResult(w, r, tags, http.StatusOK, fn)
}

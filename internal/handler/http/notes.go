// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-coach-notes/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.createNote"

	actor, err := requestActor(r)
	if err != nil {
		writeServiceError(w, r, err, fn)
		return
	}

	var req models.CreateNoteRequest
	if err = decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err, fn)
		return
	}

	view, err := h.services.NoteService.CreateNote(r.Context(), actor, req)
	if err != nil {
		writeServiceError(w, r, err, fn)
		return
	}

	writeResult(w, r, view, http.StatusCreated, fn)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.getNote"

	actor, err := requestActor(r)
	if err != nil {
		writeServiceError(w, r, err, fn)
		return
	}

	view, err := h.services.NoteService.GetNote(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, fn)
		return
	}

	writeResult(w, r, view, http.StatusOK, fn)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.updateNote"

	actor, err := requestActor(r)
	if err != nil {
		writeServiceError(w, r, err, fn)
		return
	}

	var req models.UpdateNoteRequest
	if err = decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err, fn)
		return
	}
	req.NoteID = chi.URLParam(r, "id")

	view, err := h.services.NoteService.UpdateNote(r.Context(), actor, req)
	if err != nil {
		writeServiceError(w, r, err, fn)
		return
	}

	writeResult(w, r, view, http.StatusOK, fn)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.deleteNote"

	actor, err := requestActor(r)
	if err != nil {
		writeServiceError(w, r, err, fn)
		return
	}

	if err = h.services.NoteService.DeleteNote(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err, fn)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) shareNote(w http.ResponseWriter, r *http.Request) {
	h.changeShares(w, r, "*Handler.shareNote", h.services.NoteService.ShareNote)
}

func (h *Handler) unshareNote(w http.ResponseWriter, r *http.Request) {
	h.changeShares(w, r, "*Handler.unshareNote", h.services.NoteService.UnshareNote)
}

type shareFunc = func(ctx context.Context, actor models.Actor, req models.ShareRequest) (models.SharingResponse, error)

func (h *Handler) changeShares(w http.ResponseWriter, r *http.Request, fn string, change shareFunc) {
	actor, err := requestActor(r)
	if err != nil {
		writeServiceError(w, r, err, fn)
		return
	}

	var req models.ShareRequest
	if err = decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err, fn)
		return
	}
	req.NoteID = chi.URLParam(r, "id")

	resp, err := change(r.Context(), actor, req)
	if err != nil {
		writeServiceError(w, r, err, fn)
		return
	}

	writeResult(w, r, resp, http.StatusOK, fn)
}

func (h *Handler) auditTrail(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.auditTrail"

	actor, err := requestActor(r)
	if err != nil {
		writeServiceError(w, r, err, fn)
		return
	}

	n, err := queryInt(r.URL.Query(), "n")
	if err != nil {
		writeServiceError(w, r, err, fn)
		return
	}

	entries, err := h.services.NoteService.AuditTrail(r.Context(), actor, chi.URLParam(r, "id"), n)
	if err != nil {
		writeServiceError(w, r, err, fn)
		return
	}

	writeResult(w, r, entries, http.StatusOK, fn)
}

func (h *Handler) listSessionNotes(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.listSessionNotes"

	actor, err := requestActor(r)
	if err != nil {
		writeServiceError(w, r, err, fn)
		return
	}

	views, err := h.services.NoteService.ListSessionNotes(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, fn)
		return
	}

	writeResult(w, r, views, http.StatusOK, fn)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-coach-notes/internal/policy"
	"github.com/MKhiriev/go-coach-notes/models"
)

// MaskForViewer builds the view of note returned to actor. Every read path
// goes through it.
//
// Owners and admins see the full note and the given audit trail tail. Any
// other viewer gets the same shape with Content, SearchableContent and every
// attachment reference replaced by [models.RedactedPlaceholder], empty
// SharedWith and AuditTrail lists, and Masked set.
func MaskForViewer(note models.Note, actor models.Actor, trail []models.AuditEntry) models.NoteView {
	view := models.NoteView{
		ID:             note.ID,
		CoachID:        note.CoachID,
		SessionID:      note.SessionID,
		ClientID:       note.ClientID,
		Title:          note.Title,
		IsEncrypted:    note.IsEncrypted,
		Tags:           append([]string{}, note.Tags...),
		AccessLevel:    note.Privacy.AccessLevel,
		AllowSharing:   note.Privacy.AllowSharing,
		CreatedAt:      note.CreatedAt,
		UpdatedAt:      note.UpdatedAt,
		IsEdited:       note.IsEdited(),
		EditedAt:       note.EditedAt,
		LastAccessedAt: note.LastAccessedAt,
	}

	switch policy.RelationOf(note, actor) {
	case policy.RelationOwner, policy.RelationAdmin:
		view.Content = note.Content
		view.SearchableContent = note.SearchableContent
		view.Attachments = append([]string{}, note.Attachments...)
		view.SharedWith = append([]string{}, note.Privacy.SharedWith...)
		view.AuditTrail = append([]models.AuditEntry{}, trail...)
	default:
		view.Content = models.RedactedPlaceholder
		view.SearchableContent = models.RedactedPlaceholder
		view.Attachments = make([]string, len(note.Attachments))
		for i := range view.Attachments {
			view.Attachments[i] = models.RedactedPlaceholder
		}
		view.SharedWith = []string{}
		view.AuditTrail = []models.AuditEntry{}
		view.Masked = true
	}

	return view
}

package policy

import "github.com/MKhiriev/go-coach-notes/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/policy_mock.go -package=mock

// AccessPolicy evaluates access of an actor to notes and sessions.
type AccessPolicy interface {
	// CanAccess reports whether actor may perform action on note.
	CanAccess(note models.Note, actor models.Actor, action models.Action) bool

	// Decide is CanAccess with the relation and the deny reason attached.
	Decide(note models.Note, actor models.Actor, action models.Action) Decision

	// CanCreate reports whether actor may create a note for session.
	CanCreate(session models.Session, actor models.Actor) bool
}

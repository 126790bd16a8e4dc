package policy

import "github.com/MKhiriev/go-coach-notes/models"

// Relation is the relation of an actor to a note.
type Relation string

const (
	RelationOwner  Relation = "owner"
	RelationAdmin  Relation = "admin"
	RelationViewer Relation = "viewer"
	RelationOther  Relation = "other"
)

// Relations lists every relation in precedence order.
var Relations = []Relation{RelationOwner, RelationAdmin, RelationViewer, RelationOther}

// Deny reasons carried by a [Decision].
const (
	ReasonNotAuthorized   = "not_authorized"
	ReasonSharingDisabled = "sharing_disabled"
	ReasonUnknownAction   = "unknown_action"
)

// Decision is the outcome of a policy evaluation. Reason is empty when the
// action is allowed.
type Decision struct {
	Allowed  bool
	Relation Relation
	Reason   string
}

// decisionTable holds the permitted actions per relation. A missing entry is
// a denial.
var decisionTable = map[Relation]map[models.Action]bool{
	RelationOwner: {
		models.ActionView:    true,
		models.ActionEdit:    true,
		models.ActionDelete:  true,
		models.ActionShare:   true,
		models.ActionUnshare: true,
	},
	RelationAdmin: {
		models.ActionView:    true,
		models.ActionEdit:    true,
		models.ActionDelete:  true,
		models.ActionShare:   true,
		models.ActionUnshare: true,
	},
	RelationViewer: {
		models.ActionView: true,
	},
	RelationOther: {},
}

// sharingActions are denied whenever the note does not allow sharing.
var sharingActions = map[models.Action]bool{
	models.ActionShare:   true,
	models.ActionUnshare: true,
}

type tablePolicy struct{}

// NewAccessPolicy returns the table driven [AccessPolicy].
func NewAccessPolicy() AccessPolicy {
	return tablePolicy{}
}

// RelationOf resolves the relation of actor to note. Ownership wins over the
// admin role, which wins over an explicit share.
func RelationOf(note models.Note, actor models.Actor) Relation {
	switch {
	case actor.ID != "" && note.CoachID == actor.ID:
		return RelationOwner
	case actor.IsAdmin():
		return RelationAdmin
	case actor.ID != "" && note.Privacy.IsSharedWith(actor.ID):
		return RelationViewer
	default:
		return RelationOther
	}
}

func (tablePolicy) CanAccess(note models.Note, actor models.Actor, action models.Action) bool {
	return evaluate(note, actor, action).Allowed
}

func (tablePolicy) Decide(note models.Note, actor models.Actor, action models.Action) Decision {
	return evaluate(note, actor, action)
}

func (tablePolicy) CanCreate(session models.Session, actor models.Actor) bool {
	if actor.IsAdmin() {
		return true
	}
	return actor.ID != "" && session.CoachID == actor.ID
}

func evaluate(note models.Note, actor models.Actor, action models.Action) Decision {
	relation := RelationOf(note, actor)

	known := false
	for _, a := range models.Actions {
		if a == action {
			known = true
			break
		}
	}
	if !known {
		return Decision{Relation: relation, Reason: ReasonUnknownAction}
	}

	// the sharing gate applies to every relation, owners and admins included
	if sharingActions[action] && !note.Privacy.AllowSharing {
		return Decision{Relation: relation, Reason: ReasonSharingDisabled}
	}

	if !decisionTable[relation][action] {
		return Decision{Relation: relation, Reason: ReasonNotAuthorized}
	}

	return Decision{Allowed: true, Relation: relation}
}

package session

import (
	"github.com/MKhiriev/go-pantry-keeper/models"
)

// ActionType tags an [Action] for logging.
type ActionType string

const (
	TypeSetSession        ActionType = "SET_SESSION"
	TypeSetUser           ActionType = "SET_USER"
	TypeUpdateProfile     ActionType = "UPDATE_PROFILE"
	TypeLogout            ActionType = "LOGOUT"
	TypeUpsertHouseholds  ActionType = "UPSERT_HOUSEHOLDS"
	TypeRemoveHousehold   ActionType = "REMOVE_HOUSEHOLD"
	TypeUpsertInventories ActionType = "UPSERT_INVENTORIES"
	TypeUpsertProducts    ActionType = "UPSERT_PRODUCTS"
	TypeUpsertTasks       ActionType = "UPSERT_TASKS"
	TypeRemoveTask        ActionType = "REMOVE_TASK"
	TypeAddDraft          ActionType = "ADD_DRAFT"
	TypeRemoveDraft       ActionType = "REMOVE_DRAFT"
	TypePushMessage       ActionType = "PUSH_MESSAGE"
	TypeRemoveMessage     ActionType = "REMOVE_MESSAGE"
	TypeSetPreferences    ActionType = "SET_PREFERENCES"
)

// Action is a session transition. The set of actions is closed: only the
// types of this package implement it.
type Action interface {
	Type() ActionType
	action()
}

// SetSession stores the authenticated session.
type SetSession struct{ Session models.AuthSession }

// SetUser replaces the signed-in user's profile.
type SetUser struct{ User models.Profile }

// UpdateProfile merges the non-zero fields of Patch into the current
// profile.
type UpdateProfile struct{ Patch models.Profile }

// Logout resets the whole state to [Default].
type Logout struct{}

// UpsertHouseholds inserts or replaces households by ID.
type UpsertHouseholds struct{ Households []models.Household }

// RemoveHousehold deletes a household with its inventories and tasks.
type RemoveHousehold struct{ ID string }

// UpsertInventories inserts or replaces inventories by ID.
type UpsertInventories struct{ Inventories []models.Inventory }

// UpsertProducts inserts or replaces products by ID.
type UpsertProducts struct{ Products []models.Product }

// UpsertTasks inserts or replaces tasks by ID.
type UpsertTasks struct{ Tasks []models.Task }

// RemoveTask deletes a task.
type RemoveTask struct{ ID string }

// AddDraft appends a draft, replacing one with the same ID.
type AddDraft struct{ Draft models.Draft }

// RemoveDraft deletes a draft.
type RemoveDraft struct{ ID string }

// PushMessage queues a user message.
type PushMessage struct{ Message models.UserMessage }

// RemoveMessage deletes the message with the given ID.
type RemoveMessage struct{ ID string }

// SetPreferences replaces the preferences as a whole.
type SetPreferences struct{ Preferences models.Preferences }

func (SetSession) Type() ActionType        { return TypeSetSession }
func (SetUser) Type() ActionType           { return TypeSetUser }
func (UpdateProfile) Type() ActionType     { return TypeUpdateProfile }
func (Logout) Type() ActionType            { return TypeLogout }
func (UpsertHouseholds) Type() ActionType  { return TypeUpsertHouseholds }
func (RemoveHousehold) Type() ActionType   { return TypeRemoveHousehold }
func (UpsertInventories) Type() ActionType { return TypeUpsertInventories }
func (UpsertProducts) Type() ActionType    { return TypeUpsertProducts }
func (UpsertTasks) Type() ActionType       { return TypeUpsertTasks }
func (RemoveTask) Type() ActionType        { return TypeRemoveTask }
func (AddDraft) Type() ActionType          { return TypeAddDraft }
func (RemoveDraft) Type() ActionType       { return TypeRemoveDraft }
func (PushMessage) Type() ActionType       { return TypePushMessage }
func (RemoveMessage) Type() ActionType     { return TypeRemoveMessage }
func (SetPreferences) Type() ActionType    { return TypeSetPreferences }

func (SetSession) action()        {}
func (SetUser) action()           {}
func (UpdateProfile) action()     {}
func (Logout) action()            {}
func (UpsertHouseholds) action()  {}
func (RemoveHousehold) action()   {}
func (UpsertInventories) action() {}
func (UpsertProducts) action()    {}
func (UpsertTasks) action()       {}
func (RemoveTask) action()        {}
func (AddDraft) action()          {}
func (RemoveDraft) action()       {}
func (PushMessage) action()       {}
func (RemoveMessage) action()     {}
func (SetPreferences) action()    {}

// IDGenerator returns unique identifiers for drafts and messages.
type IDGenerator interface {
	Generate() string
}

// Creators builds actions that need fresh identifiers. IDs are assigned
// here, outside the reducer, so that Reduce stays deterministic.
type Creators struct {
	ids IDGenerator
}

// NewCreators returns action creators drawing IDs from ids.
func NewCreators(ids IDGenerator) Creators {
	return Creators{ids: ids}
}

// NewDraft returns an AddDraft action for a new draft.
func (c Creators) NewDraft(kind models.DraftKind, payload string) AddDraft {
	return AddDraft{Draft: models.Draft{ID: c.ids.Generate(), Kind: kind, Payload: payload}}
}

// NewMessage returns a PushMessage action for a new message.
func (c Creators) NewMessage(level models.MessageLevel, text string) PushMessage {
	return PushMessage{Message: models.UserMessage{ID: c.ids.Generate(), Level: level, Text: text}}
}

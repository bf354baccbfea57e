package models

// DraftKind names the form a [Draft] belongs to.
type DraftKind string

const (
	DraftKindProduct   DraftKind = "product"
	DraftKindTask      DraftKind = "task"
	DraftKindHousehold DraftKind = "household"
)

// Draft is an unsaved form the user can come back to.
type Draft struct {
	ID      string    `json:"id"`
	Kind    DraftKind `json:"kind"`
	Payload string    `json:"payload"`
}

// MessageLevel is the severity of a [UserMessage].
type MessageLevel string

const (
	MessageLevelInfo    MessageLevel = "info"
	MessageLevelWarning MessageLevel = "warning"
	MessageLevelError   MessageLevel = "error"
)

// UserMessage is a notification queued for display.
type UserMessage struct {
	ID    string       `json:"id"`
	Level MessageLevel `json:"level"`
	Text  string       `json:"text"`
}

// Preferences holds per-device user preferences.
type Preferences struct {
	Theme         string `json:"theme"`
	Language      string `json:"language"`
	Notifications bool   `json:"notifications"`
	ScanSound     bool   `json:"scan_sound"`
}

// DefaultPreferences returns the preferences every fresh session and every
// reset store starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:         "system",
		Language:      "en",
		Notifications: true,
		ScanSound:     true,
	}
}

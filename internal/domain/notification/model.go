package notification

// Type categorizes a notification for badge styling.
type Type string

const (
	TypeLead      Type = "lead"
	TypeProject   Type = "project"
	TypeFeedback  Type = "feedback"
	TypeFinancial Type = "financial"
	TypeInfo      Type = "info"
)

// Valid reports whether t is one of the known notification types.
func (t Type) Valid() bool {
	switch t {
	case TypeLead, TypeProject, TypeFeedback, TypeFinancial, TypeInfo:
		return true
	}
	return false
}

// Notification is an in-app notification. The Time field is a display
// string ("Just now", "2 days ago"), not a timestamp; the original data
// shape is preserved so fixtures and snapshots round-trip.
type Notification struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Time    string `json:"time"`
	Type    Type   `json:"type"`
	Read    bool   `json:"read"`
}

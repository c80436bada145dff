package project

// Status is the project workflow state.
type Status string

const (
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in-progress"
	StatusDelayed    Status = "delayed"
	StatusCompleted  Status = "completed"
	StatusOnHold     Status = "on-hold"
)

// Valid reports whether s is a known project status.
func (s Status) Valid() bool {
	switch s {
	case StatusPlanning, StatusInProgress, StatusDelayed, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

// Project is a CRM project record. ClientName is a denormalized
// snapshot of the client's name at creation time and is deliberately
// not kept in sync with later client renames.
type Project struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	ClientID    int     `json:"clientId"`
	ClientName  string  `json:"clientName"`
	DueDate     string  `json:"dueDate"`
	Status      Status  `json:"status"`
	Progress    int     `json:"progress"`
	Budget      float64 `json:"budget"`
	Description string  `json:"description"`
}

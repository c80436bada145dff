package client

// Status is the client lifecycle state.
type Status string

const (
	StatusActive   Status = "active"
	StatusPending  Status = "pending"
	StatusInactive Status = "inactive"
)

// Valid reports whether s is a known client status.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPending, StatusInactive:
		return true
	}
	return false
}

// Client is a CRM client record. Projects is a denormalized count of
// live project records referencing this client and is maintained by the
// project operations, never set directly. JoinDate is a YYYY-MM-DD date
// string stamped at creation.
type Client struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Phone    string `json:"phone"`
	Status   Status `json:"status"`
	JoinDate string `json:"joinDate"`
	Projects int    `json:"projects"`
}

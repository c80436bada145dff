package feedback

// Feedback is a client rating for a project. ClientName and ProjectName
// are denormalized snapshots taken at creation. Date is a YYYY-MM-DD
// date string stamped at creation.
type Feedback struct {
	ID          int    `json:"id"`
	ClientID    int    `json:"clientId"`
	ProjectID   int    `json:"projectId"`
	ClientName  string `json:"clientName"`
	ProjectName string `json:"projectName"`
	Rating      int    `json:"rating"`
	Comments    string `json:"comments"`
	Date        string `json:"date"`
}

package feedback

import (
	"fmt"
	"strconv"
	"strings"
)

// Form carries raw string values from a feedback submission.
type Form struct {
	ClientID  string
	ProjectID string
	Rating    string
	Comments  string
}

// Parse validates the form and produces a typed AddRequest.
func (f Form) Parse() (AddRequest, error) {
	clientID, err := strconv.Atoi(strings.TrimSpace(f.ClientID))
	if err != nil {
		return AddRequest{}, fmt.Errorf("%w: clientId %q is not an integer", ErrInvalidInput, f.ClientID)
	}
	projectID, err := strconv.Atoi(strings.TrimSpace(f.ProjectID))
	if err != nil {
		return AddRequest{}, fmt.Errorf("%w: projectId %q is not an integer", ErrInvalidInput, f.ProjectID)
	}
	rating, err := strconv.Atoi(strings.TrimSpace(f.Rating))
	if err != nil {
		return AddRequest{}, fmt.Errorf("%w: rating %q is not an integer", ErrInvalidInput, f.Rating)
	}
	if rating < 1 || rating > 5 {
		return AddRequest{}, fmt.Errorf("%w: rating %d out of range", ErrInvalidInput, rating)
	}

	return AddRequest{
		ClientID:  clientID,
		ProjectID: projectID,
		Rating:    rating,
		Comments:  f.Comments,
	}, nil
}

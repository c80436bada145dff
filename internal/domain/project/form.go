package project

import (
	"fmt"
	"strconv"
	"strings"
)

// Form carries raw string values from a form submission. Parse replaces
// the silent string-to-integer coercion of form values with explicit
// validation at the boundary.
type Form struct {
	Name        string
	ClientID    string
	DueDate     string
	Status      string
	Progress    string
	Budget      string
	Description string
}

// Parse validates the form and produces a typed AddRequest.
func (f Form) Parse() (AddRequest, error) {
	if strings.TrimSpace(f.Name) == "" {
		return AddRequest{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	clientID, err := strconv.Atoi(strings.TrimSpace(f.ClientID))
	if err != nil {
		return AddRequest{}, fmt.Errorf("%w: clientId %q is not an integer", ErrInvalidInput, f.ClientID)
	}

	progress := 0
	if strings.TrimSpace(f.Progress) != "" {
		progress, err = strconv.Atoi(strings.TrimSpace(f.Progress))
		if err != nil {
			return AddRequest{}, fmt.Errorf("%w: progress %q is not an integer", ErrInvalidInput, f.Progress)
		}
		if progress < 0 || progress > 100 {
			return AddRequest{}, fmt.Errorf("%w: progress %d out of range", ErrInvalidInput, progress)
		}
	}

	var budget float64
	if strings.TrimSpace(f.Budget) != "" {
		budget, err = strconv.ParseFloat(strings.TrimSpace(f.Budget), 64)
		if err != nil {
			return AddRequest{}, fmt.Errorf("%w: budget %q is not a number", ErrInvalidInput, f.Budget)
		}
		if budget < 0 {
			return AddRequest{}, fmt.Errorf("%w: budget must not be negative", ErrInvalidInput)
		}
	}

	status := Status(f.Status)
	if f.Status != "" && !status.Valid() {
		return AddRequest{}, fmt.Errorf("%w: status %q", ErrInvalidInput, f.Status)
	}

	return AddRequest{
		Name:        strings.TrimSpace(f.Name),
		ClientID:    clientID,
		DueDate:     strings.TrimSpace(f.DueDate),
		Status:      status,
		Progress:    progress,
		Budget:      budget,
		Description: f.Description,
	}, nil
}

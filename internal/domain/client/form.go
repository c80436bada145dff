package client

import (
	"fmt"
	"strings"
)

// Form carries raw string values from a form submission. ParseForm is
// the typed boundary between the presentation layer and the service;
// nothing downstream coerces strings.
type Form struct {
	Name    string
	Email   string
	Company string
	Phone   string
	Status  string
}

// Parse validates the form and produces a typed AddRequest.
func (f Form) Parse() (AddRequest, error) {
	if strings.TrimSpace(f.Name) == "" {
		return AddRequest{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	status := Status(f.Status)
	if f.Status != "" && !status.Valid() {
		return AddRequest{}, fmt.Errorf("%w: status %q", ErrInvalidInput, f.Status)
	}
	return AddRequest{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Company: strings.TrimSpace(f.Company),
		Phone:   strings.TrimSpace(f.Phone),
		Status:  status,
	}, nil
}

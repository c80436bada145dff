package project_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/accessarch/crm/internal/domain/project"
)

func TestProjectFormParse(t *testing.T) {
	req, err := project.Form{
		Name:     "Bridge Retrofit",
		ClientID: "3",
		Progress: "25",
		Budget:   "120000.50",
		Status:   "in-progress",
	}.Parse()
	require.NoError(t, err)
	require.Equal(t, 3, req.ClientID)
	require.Equal(t, 25, req.Progress)
	require.Equal(t, 120000.50, req.Budget)
	require.Equal(t, project.StatusInProgress, req.Status)
}

func TestProjectFormParseRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		form project.Form
	}{
		{"blank name", project.Form{Name: " ", ClientID: "1"}},
		{"non-numeric client", project.Form{Name: "x", ClientID: "abc"}},
		{"progress out of range", project.Form{Name: "x", ClientID: "1", Progress: "101"}},
		{"negative budget", project.Form{Name: "x", ClientID: "1", Budget: "-5"}},
		{"unknown status", project.Form{Name: "x", ClientID: "1", Status: "paused"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.form.Parse()
			require.ErrorIs(t, err, project.ErrInvalidInput)
		})
	}
}

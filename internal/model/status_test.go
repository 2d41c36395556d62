package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelpRequestStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from, to HelpRequestStatus
		want     bool
	}{
		{StatusOpen, StatusInProgress, true},
		{StatusOpen, StatusResolved, true},
		{StatusOpen, StatusOpen, false},
		{StatusInProgress, StatusResolved, true},
		{StatusInProgress, StatusOpen, true},
		{StatusResolved, StatusOpen, true},
		{StatusResolved, StatusInProgress, false},
		{HelpRequestStatus("archived"), StatusOpen, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestHelpRequestStatus_Valid(t *testing.T) {
	assert.True(t, StatusInProgress.Valid())
	assert.False(t, HelpRequestStatus("").Valid())
}

func TestFounderInput_ApplyKeepsVisibility(t *testing.T) {
	f := &Founder{Visible: true}
	FounderInput{Name: "Ada", Email: "ada@example.com"}.Apply(f)
	assert.True(t, f.Visible)
	assert.Equal(t, "Ada", f.Name)

	hidden := false
	FounderInput{Name: "Ada", Email: "ada@example.com", Visible: &hidden}.Apply(f)
	assert.False(t, f.Visible)
}

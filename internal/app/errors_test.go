package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_RendersCodeAndMessage(t *testing.T) {
	err := NotFound("task %s not found", "t-9")
	assert.Equal(t, "NOT_FOUND: task t-9 not found", err.Error())
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"direct", FailedPrecondition("busy"), ErrFailedPrecondition},
		{"wrapped", fmt.Errorf("outer: %w", InvalidArgument("bad")), ErrInvalidArgument},
		{"plain error", errors.New("boom"), ErrInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestInternal_KeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Internal(cause, "writing assignment")

	assert.Equal(t, "INTERNAL: writing assignment: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestWithDetail(t *testing.T) {
	err := FailedPrecondition("resource r1 is booked").WithDetail("dates", []string{"2024-03-04"})
	require.NotNil(t, err.Details)
	assert.Equal(t, []string{"2024-03-04"}, err.Details["dates"])
}

package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("odds are required")
	assert.Error(t, err)
	assert.Equal(t, "odds are required", err.Error())
}

func TestNewValidationErrorf(t *testing.T) {
	err := NewValidationErrorf("expected between %d and %d outcomes, got %d", 2, 3, 5)
	assert.Error(t, err)
	assert.Equal(t, "expected between 2 and 3 outcomes, got 5", err.Error())
}

func TestIsValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "plain validation error",
			err:  NewValidationError("bad input"),
			want: true,
		},
		{
			name: "wrapped validation error",
			err:  fmt.Errorf("evaluate: %w", NewValidationError("bad input")),
			want: true,
		},
		{
			name: "unrelated error",
			err:  fmt.Errorf("connection refused"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidationError(tt.err))
		})
	}
}

package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Error(t *testing.T) {
	assert.Equal(t, "[NOT_FOUND] no results found", ErrNoResults.Error())

	err := ErrSearchFailed.WithCause(errors.New("timeout"))
	assert.Equal(t, "[UPSTREAM_ERROR] search request failed: timeout", err.Error())
}

func TestDomainError_WithCause(t *testing.T) {
	cause := errors.New("status 500")
	err := ErrLLMFailed.WithCause(cause)

	assert.ErrorIs(t, err, ErrLLMFailed)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrSearchFailed)
	assert.Nil(t, ErrLLMFailed.Err, "sentinel must not be modified")

	wrapped := fmt.Errorf("taste: %w", err)
	assert.ErrorIs(t, wrapped, ErrLLMFailed)

	var domainErr *DomainError
	assert.True(t, errors.As(wrapped, &domainErr))
	assert.Equal(t, ErrCodeUpstream, domainErr.Code)
}

func TestDomainError_IsMatchesCodeAndMessage(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"same sentinel", ErrEmptyInput, ErrEmptyInput, true},
		{"same code different message", ErrEmptyInput, ErrTooFewProducts, false},
		{"rebuilt copy", NewDomainError(ErrCodeNotFound, "no results found"), ErrNoResults, true},
		{"with cause", NewDomainErrorWithCause(ErrCodeMissingCredential, "credential not provided", errors.New("x")), ErrMissingCredential, true},
		{"plain error", errors.New("no results found"), ErrNoResults, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Is(tt.err, tt.target))
		})
	}
}

func TestPreferences(t *testing.T) {
	prefs := Preferences{
		Styles:    []string{"미니멀"},
		Budget:    "30만원대",
		BudgetMin: IntPtr(300000),
		BudgetMax: IntPtr(399999),
		Brands:    []string{"나이키"},
	}
	assert.True(t, prefs.HasBudget())
	assert.Equal(t, []string{"미니멀", "30만원대", "나이키"}, prefs.Summary())

	assert.False(t, Preferences{BudgetMax: IntPtr(1000)}.HasBudget())
	assert.Empty(t, Preferences{}.Summary())
}

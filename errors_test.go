package winaudio

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTypesUnwrap(t *testing.T) {
	cause := errors.New("hr 0x80070005")

	var err error = &InitializationError{Err: cause}
	assert.ErrorIs(t, err, cause)

	err = &EnumerationError{Op: "failed to get endpoint count", Err: cause}
	assert.ErrorIs(t, err, cause)

	err = &PolicyUnavailableError{Err: cause}
	assert.ErrorIs(t, err, cause)
}

func TestErrorMessagesNameTheFailingCall(t *testing.T) {
	err := &EnumerationError{Op: "failed to enumerate render endpoints", Err: errors.New("hr 0x88890008")}

	assert.Contains(t, err.Error(), "enumerate render endpoints")
	assert.Contains(t, err.Error(), "0x88890008")
}

func TestErrorKindsDistinguishable(t *testing.T) {
	wrapped := fmt.Errorf("operation: %w", &PolicyUnavailableError{Err: errors.New("class not registered")})

	var policyErr *PolicyUnavailableError
	assert.ErrorAs(t, wrapped, &policyErr)

	var enumErr *EnumerationError
	assert.False(t, errors.As(wrapped, &enumErr))
}

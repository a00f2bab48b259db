package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImplError_Error(t *testing.T) {
	withToken := NewImplError(ErrorTypeUnsupportedToken, "java.lang.String", "final types cannot be extended")
	assert.Equal(t, "UnsupportedToken: java.lang.String: final types cannot be extended", withToken.Error())

	withoutToken := NewImplError(ErrorTypeIOFailure, "", "disk full")
	assert.Equal(t, "IOFailure: disk full", withoutToken.Error())
}

func TestImplError_Unwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := &ImplError{Type: ErrorTypeIOFailure, Message: "cannot write", Cause: cause}

	assert.ErrorIs(t, err, cause)
}

func TestIsErrorType(t *testing.T) {
	err := NewImplError(ErrorTypeNoAccessibleConstructor, "demo.Locked", "class has only private constructors")

	assert.True(t, IsErrorType(err, ErrorTypeNoAccessibleConstructor))
	assert.False(t, IsErrorType(err, ErrorTypeUnsupportedToken))
	assert.False(t, IsErrorType(errors.New("plain"), ErrorTypeUnsupportedToken))

	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, IsErrorType(wrapped, ErrorTypeNoAccessibleConstructor))
}

func TestErrorType_String(t *testing.T) {
	assert.Equal(t, "UnsupportedToken", ErrorTypeUnsupportedToken.String())
	assert.Equal(t, "InaccessibleAncestor", ErrorTypeInaccessibleAncestor.String())
	assert.Equal(t, "NoAccessibleConstructor", ErrorTypeNoAccessibleConstructor.String())
	assert.Equal(t, "CompilationFailed", ErrorTypeCompilationFailed.String())
	assert.Equal(t, "IOFailure", ErrorTypeIOFailure.String())
	assert.Equal(t, "DescriptorSyntax", ErrorTypeDescriptorSyntax.String())
	assert.Equal(t, "UnknownType", ErrorTypeUnknownType.String())
}

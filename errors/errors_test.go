package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorClassString(t *testing.T) {
	tests := []struct {
		name     string
		class    ErrorClass
		expected string
	}{
		{"transient", ErrorTransient, "transient"},
		{"invalid", ErrorInvalid, "invalid"},
		{"fatal", ErrorFatal, "fatal"},
		{"unknown", ErrorClass(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.class.String())
		})
	}
}

func TestWrapFormat(t *testing.T) {
	base := stderrors.New("boom")
	wrapped := Wrap(base, "GeoModel", "UpdateOption", "region resolution")

	require.Error(t, wrapped)
	assert.Equal(t, "GeoModel.UpdateOption: region resolution failed: boom", wrapped.Error())
	assert.True(t, stderrors.Is(wrapped, base), "wrapping should preserve the error chain")
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "C", "M", "a"))
	assert.NoError(t, WrapInvalid(nil, "C", "M", "a"))
	assert.NoError(t, WrapFatal(nil, "C", "M", "a"))
}

func TestClassificationPreservedThroughChain(t *testing.T) {
	err := WrapInvalid(ErrInvalidOption, "Option", "Validate", "selectedMode check")

	assert.True(t, IsInvalid(err))
	assert.False(t, IsFatal(err))
	assert.Equal(t, ErrorInvalid, Classify(err))

	var ce *ClassifiedError
	require.True(t, stderrors.As(err, &ce))
	assert.Equal(t, "Option", ce.Component)
	assert.Equal(t, "Validate", ce.Operation)
}

func TestSentinelClassification(t *testing.T) {
	assert.True(t, IsInvalid(ErrInvalidGeometry))
	assert.True(t, IsInvalid(ErrInvalidConfig))
	assert.False(t, IsInvalid(ErrMapNotRegistered))
	assert.False(t, IsInvalid(nil))
	assert.False(t, IsFatal(nil))
}

func TestResolutionError(t *testing.T) {
	base := ErrSourceFailed
	re := NewResolutionError("world", "asia-provider", base)

	assert.Contains(t, re.Error(), `map "world"`)
	assert.Contains(t, re.Error(), `source "asia-provider"`)
	assert.True(t, stderrors.Is(re, base))

	// Detection must survive further wrapping.
	wrapped := Wrap(re, "Registry", "Resolve", "provider load")
	assert.True(t, IsResolution(wrapped))
	assert.False(t, IsResolution(base))

	var got *ResolutionError
	require.True(t, stderrors.As(wrapped, &got))
	assert.Equal(t, "world", got.MapName)
}

func TestResolutionErrorWithoutSource(t *testing.T) {
	re := NewResolutionError("world", "", ErrSourceFailed)
	assert.NotContains(t, re.Error(), "source")
	assert.Contains(t, re.Error(), `map "world"`)
}

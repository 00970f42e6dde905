package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Class
	}{
		{"nil", nil, ClassUnknown},
		{"missing input", fmt.Errorf("%w: getNft.json", ErrInputNotFound), ClassMissingInput},
		{"malformed", fmt.Errorf("decode events: %w: unexpected EOF", ErrParsingFailed), ClassMalformed},
		{"config", fmt.Errorf("%w: projection", ErrInvalidConfig), ClassInvalidConfig},
		{"io", fmt.Errorf("save: %w", ErrWriteFailed), ClassIO},
		{"other", errors.New("boom"), ClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "missing-input", ClassMissingInput.String())
	assert.Equal(t, "malformed", ClassMalformed.String())
	assert.Equal(t, "invalid-config", ClassInvalidConfig.String())
	assert.Equal(t, "io", ClassIO.String())
	assert.Equal(t, "unknown", Class(42).String())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(ErrInputNotFound))
	assert.Equal(t, 1, ExitCode(errors.New("anything")))
}

package errkind_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sgaunet/filesplit/pkg/errkind"
	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	errTooLarge := fmt.Errorf("%w: chunk size too large", errkind.ErrConfig)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"unrelated", errors.New("boom"), nil},
		{"context", context.Canceled, nil},
		{"direct", errkind.ErrIO, errkind.ErrIO},
		{"wrapped once", errTooLarge, errkind.ErrConfig},
		{"wrapped twice", fmt.Errorf("split failed: %w", errTooLarge), errkind.ErrConfig},
		{"format", fmt.Errorf("line 3: %w", errkind.ErrFormat), errkind.ErrFormat},
		{"integrity", fmt.Errorf("%w: bad chunk", errkind.ErrIntegrity), errkind.ErrIntegrity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errkind.Of(tt.err))
		})
	}
}

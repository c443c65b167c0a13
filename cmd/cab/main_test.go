package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"testing"

	"github.com/mfridman/cab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
		report   bool
	}{
		{
			name:     "child exit status",
			err:      &cab.ExitError{Code: 3, Err: errors.New("exit status 3")},
			expected: 3,
		},
		{
			name:     "cabal not found",
			err:      fmt.Errorf("exec cabal: %w", &exec.Error{Name: "cabal", Err: exec.ErrNotFound}),
			expected: 127,
			report:   true,
		},
		{
			name:     "other launch failure",
			err:      errors.New("exec cabal: permission denied"),
			expected: 126,
			report:   true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code, report := exitCode(tt.err)
			assert.Equal(t, tt.expected, code)
			assert.Equal(t, tt.report, report)
		})
	}
}

func TestExitCodeMissingCabal(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	err := cab.Run(context.Background(), []string{"build"}, &cab.RunOptions{
		Stdout: io.Discard,
	})
	require.Error(t, err)
	code, report := exitCode(err)
	assert.Equal(t, 127, code)
	assert.True(t, report)
}

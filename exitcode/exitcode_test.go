// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package exitcode

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithCode(t *testing.T) {
	t.Parallel()

	t.Run("wraps error with code", func(t *testing.T) {
		t.Parallel()

		err := WithCode(errors.New("no input given"), Usage)
		require.NotNil(t, err)

		coded, ok := err.(*CodedError)
		require.True(t, ok, "expected *CodedError, got %T", err)
		require.Equal(t, Usage, coded.ExitCode())
		require.Equal(t, "no input given", coded.Error())
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		t.Parallel()

		require.Nil(t, WithCode(nil, Usage))
	})
}

func TestCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, OK},
		{"plain error", errors.New("plain error"), Failure},
		{"coded error", WithCode(errors.New("bad flag"), Usage), Usage},
		{"wrapped coded error", fmt.Errorf("outer: %w", WithCode(errors.New("bad flag"), Usage)), Usage},
		{
			"deeply wrapped coded error",
			fmt.Errorf("layer 2: %w", fmt.Errorf("layer 1: %w", WithCode(errors.New("x"), 3))),
			3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Code(tt.err))
		})
	}
}

func TestCodedError_Unwrap(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("table is nil")
	err := WithCode(fmt.Errorf("apply: %w", sentinel), Failure)

	require.ErrorIs(t, err, sentinel)

	var coded *CodedError
	require.ErrorAs(t, fmt.Errorf("context: %w", err), &coded)
	require.Equal(t, Failure, coded.ExitCode())
}

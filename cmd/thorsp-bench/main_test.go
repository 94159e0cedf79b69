package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_RandomGraphSucceeds(t *testing.T) {
	out, err := os.CreateTemp(t.TempDir(), "stdout-*")
	require.NoError(t, err)
	defer out.Close()

	code := run([]string{"-random", "30", "-seed", "5", "-repeat", "3"}, out)
	require.Equal(t, 0, code)
}

func TestRun_FailsWithNoGraphSource(t *testing.T) {
	out, err := os.CreateTemp(t.TempDir(), "stdout-*")
	require.NoError(t, err)
	defer out.Close()

	code := run([]string{}, out)
	require.Equal(t, 1, code)
}

func TestRun_FailsOnInvalidRepeat(t *testing.T) {
	out, err := os.CreateTemp(t.TempDir(), "stdout-*")
	require.NoError(t, err)
	defer out.Close()

	code := run([]string{"-random", "10", "-repeat", "0"}, out)
	require.Equal(t, 1, code)
}

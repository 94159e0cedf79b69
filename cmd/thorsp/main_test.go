package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempDIMACS(t *testing.T, contents string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "thorsp-*.gr")
	require.NoError(t, err)
	_, err = f.WriteString(contents)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	return f.Name()
}

func TestRun_SucceedsOnValidInput(t *testing.T) {
	path := writeTempDIMACS(t, "p sp 3 2\na 1 2 1\na 2 1 1\na 2 3 2\na 3 2 2\n")
	out, err := os.CreateTemp(t.TempDir(), "stdout-*")
	require.NoError(t, err)
	defer out.Close()

	code := run([]string{"-input", path, "-source", "0"}, out, os.Stderr)
	require.Equal(t, 0, code)
}

func TestRun_FailsOnMissingInputFlag(t *testing.T) {
	out, err := os.CreateTemp(t.TempDir(), "stdout-*")
	require.NoError(t, err)
	defer out.Close()

	code := run([]string{}, out, os.Stderr)
	require.Equal(t, 1, code)
}

func TestRun_FailsOnMissingFile(t *testing.T) {
	out, err := os.CreateTemp(t.TempDir(), "stdout-*")
	require.NoError(t, err)
	defer out.Close()

	code := run([]string{"-input", "/no/such/file.gr"}, out, os.Stderr)
	require.Equal(t, 1, code)
}

func TestRun_FailsOnUnknownAlgorithm(t *testing.T) {
	path := writeTempDIMACS(t, "p sp 2 1\na 1 2 1\na 2 1 1\n")
	out, err := os.CreateTemp(t.TempDir(), "stdout-*")
	require.NoError(t, err)
	defer out.Close()

	code := run([]string{"-input", path, "-algo", "bogus"}, out, os.Stderr)
	require.Equal(t, 1, code)
}

func TestRun_FailsOnOutOfRangeSource(t *testing.T) {
	path := writeTempDIMACS(t, "p sp 2 1\na 1 2 1\na 2 1 1\n")
	out, err := os.CreateTemp(t.TempDir(), "stdout-*")
	require.NoError(t, err)
	defer out.Close()

	code := run([]string{"-input", path, "-source", "99"}, out, os.Stderr)
	require.Equal(t, 1, code)
}

package main_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(tb testing.TB, path, content string) {
	tb.Helper()

	require.NoError(tb, os.WriteFile(path, []byte(content), 0644))
}

package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// UpdateEnv rewrites golden files instead of comparing when set.
const UpdateEnv = "UPDATE_GOLDEN"

// AssertGoldenJSON encodes v as indented JSON and compares it with
// testdata/<name> in the calling package. Key order and whitespace are
// ignored, so the file may be edited by hand.
func AssertGoldenJSON(t *testing.T, name string, v interface{}) {
	t.Helper()
	got, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err, "encode %s", name)
	got = append(got, '\n')

	path := filepath.Join("testdata", name)
	if os.Getenv(UpdateEnv) != "" {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, got, 0o644))
	}
	want, err := os.ReadFile(path)
	require.NoError(t, err, "read golden %s (set %s=1 to create it)", name, UpdateEnv)
	require.JSONEq(t, string(want), string(got), "golden %s", name)
}

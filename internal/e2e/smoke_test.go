package e2e

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestSmokeFlow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprintf(w, `{"path":%q}`, r.URL.Path)
	}))
	defer server.Close()

	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runFetchpad(t, binaryPath, home, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.NotEmpty(t, stdout)

	stdout, stderr, err = runFetchpad(t, binaryPath, home, "get", server.URL+"/status", "http://127.0.0.1:1/closed")
	require.NoError(t, err, "stderr: %s", stderr)
	require.True(t, gjson.Valid(stdout), stdout)
	assert.Equal(t, `{"path":"/status"}`, gjson.Get(stdout, gjson.Escape(server.URL+"/status")).String())
	assert.Contains(t, gjson.Get(stdout, gjson.Escape("http://127.0.0.1:1/closed")).String(), "<error: ")

	logData, err := os.ReadFile(filepath.Join(home, ".local", "state", "fetchpad", "fetchpad.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logData), `"message":"history exported"`)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "fetchpad-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/fetchpad")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build fetchpad binary: %s", string(output))
	return binaryPath
}

func runFetchpad(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"XDG_CONFIG_HOME="+filepath.Join(home, ".config"),
		"XDG_STATE_HOME="+filepath.Join(home, ".local", "state"),
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

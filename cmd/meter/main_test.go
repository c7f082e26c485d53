package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/meeting-meter/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, baseURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "gemini:\n  base_url: \"" + baseURL + "\"\nlogging:\n  level: error\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestMissingArgumentsPrintsUsage(t *testing.T) {
	out, err := execute(t, "only-one.txt")
	require.Error(t, err)
	assert.Contains(t, out, "Usage:")
}

func TestMissingCredentialAbortsBeforeProcessing(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "")
	t.Setenv(config.EnvAPIKeys, "")

	dir := t.TempDir()
	out := filepath.Join(dir, "out.md")
	_, err := execute(t, "--config", filepath.Join(dir, "none.yaml"), filepath.Join(dir, "missing.txt"), out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY is required")
	assert.NoFileExists(t, out)
}

func TestAnalyzeMalformedModelResponseStillSucceeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"promptFeedback":{"blockReason":"OTHER"}}`)
	}))
	defer srv.Close()

	t.Setenv(config.EnvAPIKey, "test-key")
	dir := t.TempDir()
	in := filepath.Join(dir, "meeting.txt")
	out := filepath.Join(dir, "meeting.md")
	require.NoError(t, os.WriteFile(in, []byte("SPEAKER_00: um, so\nSPEAKER_01: fine"), 0644))

	stdout, err := execute(t, "--config", writeConfig(t, srv.URL+"/"), in, out)
	require.NoError(t, err)

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(written), "[Error parsing Gemini response]")
	assert.Contains(t, string(written), "Full response:")
	assert.Contains(t, string(written), "OTHER")
	assert.Contains(t, string(written), "## Filler Word Analysis")
	assert.Contains(t, string(written), "**SPEAKER_00**\n- um: 1\n- so: 1\n")

	assert.Contains(t, stdout, "Report saved to: "+out)
	assert.Contains(t, stdout, "--- Quick Preview ---\n[Error parsing Gemini response]")
}

func TestAnalyzeAPIErrorRendersFullResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`)
	}))
	defer srv.Close()

	t.Setenv(config.EnvAPIKey, "bad-key")
	dir := t.TempDir()
	in := filepath.Join(dir, "meeting.txt")
	out := filepath.Join(dir, "meeting.md")
	require.NoError(t, os.WriteFile(in, []byte("SPEAKER_00: like"), 0644))

	_, err := execute(t, "--config", writeConfig(t, srv.URL+"/"), in, out)
	require.NoError(t, err)

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(written), "[Error parsing Gemini response]\ngenerate content: Error 400")
	assert.Contains(t, string(written), "Full response:\n{")
	assert.Contains(t, string(written), `"status": "INVALID_ARGUMENT"`)
	assert.Contains(t, string(written), "- like: 1\n")
}

func TestAnalyzeUnreadableTranscriptFails(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "test-key")
	dir := t.TempDir()

	_, err := execute(t, "--config", filepath.Join(dir, "none.yaml"), filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read transcript")
}

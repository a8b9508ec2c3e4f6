package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Validate(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, "validate", nil))
	assert.Equal(t, "embedded fixtures OK: 4 conversations, 5 messages, 4 gigs, 8 months\n", out.String())

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("gigs: [{id: 1, status: archived}]\n"), 0o600))
	assert.Error(t, run(&out, "validate", []string{bad}))

	assert.Error(t, run(&out, "validate", []string{filepath.Join(t.TempDir(), "missing.yaml")}))
}

func TestRun_Gigs(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, "gigs", nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[1], "Full Stack Web Application Development")
	assert.Contains(t, lines[1], "20.4%")
}

func TestRun_Conversations(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, "conversations", []string{"Sarah"}))
	assert.Contains(t, out.String(), "Sarah Johnson")
	assert.NotContains(t, out.String(), "Mike Chen")

	out.Reset()
	require.NoError(t, run(&out, "conversations", []string{"zzz"}))
	assert.Equal(t, "No conversations found\n", out.String())
}

func TestRun_Earnings(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, "earnings", nil))
	assert.Contains(t, out.String(), "$27156")
	assert.Contains(t, out.String(), "Jan")
}

func TestRun_UnknownCommand(t *testing.T) {
	assert.Error(t, run(&bytes.Buffer{}, "ban", nil))
}

package main

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "Neither topic nor prompt",
			args:        []string{"generate", "--out", "/tmp/bank.yaml"},
			errorString: "either --topic or --prompt",
		},
		{
			name:        "Topic and prompt together",
			args:        []string{"generate", "--topic", "goroutines", "--prompt", "What is a mutex?", "--out", "/tmp/bank.yaml"},
			errorString: "mutually exclusive",
		},
		{
			name:        "Topic without out",
			args:        []string{"generate", "--topic", "goroutines"},
			errorString: "--out is required",
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}

func TestGenerateCommand_MissingAPIKey(t *testing.T) {
	binaryPath, err := filepath.Abs(getBinaryPath(t))
	require.NoError(t, err)

	cmd := exec.Command(binaryPath, "generate", "--topic", "goroutines", "--out", "/tmp/bank.yaml")
	// Scrub the environment and run from a directory with no .env so the
	// binary cannot pick up a real key.
	cmd.Env = []string{}
	cmd.Dir = t.TempDir()
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "API key required")
}

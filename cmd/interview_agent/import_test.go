package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "Missing --url flag",
			args:        []string{"import", "--out", "/tmp/bank.yaml"},
			errorString: "required",
		},
		{
			name:        "Missing --out flag",
			args:        []string{"import", "--url", "https://example.com/questions"},
			errorString: "required",
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

func TestImportCommand_InvalidURL(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "import", "--url", "not-a-url", "--out", "/tmp/bank.yaml")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to fetch page")
}

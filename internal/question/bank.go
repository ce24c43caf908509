// Package question loads YAML question banks and validates them against the
// question bank JSON Schema before they reach the database.
package question

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// SchemaRelPath is the bank schema's location relative to the repo root.
const SchemaRelPath = "schemas/question_bank.schema.json"

// Entry is a single authored question in a YAML bank.
type Entry struct {
	Category    string   `yaml:"category" json:"category"`
	Difficulty  string   `yaml:"difficulty" json:"difficulty"`
	Prompt      string   `yaml:"prompt" json:"prompt"`
	IdealAnswer string   `yaml:"ideal_answer,omitempty" json:"ideal_answer,omitempty"`
	Concepts    []string `yaml:"concepts,omitempty" json:"concepts,omitempty"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Source      string   `yaml:"source,omitempty" json:"source,omitempty"`
}

// Bank is a parsed question bank file.
type Bank struct {
	Questions []Entry `yaml:"questions" json:"questions"`
}

// Load loads a bank from path, which may be a single YAML file or a directory
// of YAML files.
func Load(path, schemaPath string) (*Bank, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("bank path not found: %s", path)
	}
	if info.IsDir() {
		return LoadDir(path, schemaPath)
	}
	return LoadBank(path, schemaPath)
}

// LoadBank reads a YAML bank file and validates it against the schema at
// schemaPath. Validation runs on the raw document, not the typed struct, so
// missing required fields and unknown keys are caught before unmarshaling.
func LoadBank(path, schemaPath string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bank file %s: %w", path, err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse bank YAML %s: %w", path, err)
	}

	document, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to convert bank %s to JSON: %w", path, err)
	}

	if err := ValidateDocument(schemaPath, document); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			ve.Path = path
		}
		return nil, err
	}

	var bank Bank
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("failed to parse bank YAML %s: %w", path, err)
	}

	return &bank, nil
}

// LoadDir loads every .yaml and .yml file directly under dir and merges their
// questions into a single bank. Files load in name order so seeding runs are
// deterministic.
func LoadDir(dir, schemaPath string) (*Bank, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read bank directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, fmt.Errorf("no YAML bank files found in %s", dir)
	}

	merged := &Bank{}
	for _, name := range names {
		bank, err := LoadBank(filepath.Join(dir, name), schemaPath)
		if err != nil {
			return nil, err
		}
		merged.Questions = append(merged.Questions, bank.Questions...)
	}

	return merged, nil
}

// WriteBank marshals a bank to YAML at path. The importer and generator emit
// draft bank files through this for review before seeding.
func WriteBank(path string, bank *Bank) error {
	data, err := yaml.Marshal(bank)
	if err != nil {
		return fmt.Errorf("failed to marshal bank: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write bank file %s: %w", path, err)
	}
	return nil
}

package importer

import (
	"fmt"

	"github.com/daniel/interview-coach/internal/question"
)

// DraftOptions controls how extracted questions become bank entries.
// Imported entries carry no ideal answer or concepts; those are filled in by
// hand or by the generate command before the bank is worth seeding.
type DraftOptions struct {
	Category   string
	Difficulty string
	Tags       []string
	Source     string
}

// BuildBank wraps extracted question strings into a draft bank. Category and
// difficulty default to technical/medium, source should name the page the
// questions came from.
func BuildBank(questions []string, opts DraftOptions) (*question.Bank, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions to build a bank from")
	}

	category := opts.Category
	if category == "" {
		category = "technical"
	}
	difficulty := opts.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}

	bank := &question.Bank{Questions: make([]question.Entry, 0, len(questions))}
	for _, prompt := range questions {
		bank.Questions = append(bank.Questions, question.Entry{
			Category:   category,
			Difficulty: difficulty,
			Prompt:     prompt,
			Tags:       opts.Tags,
			Source:     opts.Source,
		})
	}

	return bank, nil
}

// Package generation - draft.go turns LLM responses into bank entries.
package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/daniel/interview-coach/internal/question"
)

const (
	defaultDraftCount = 5
	maxDraftCount     = 20
	// minPromptLength mirrors the bank schema's prompt minimum so drafts
	// that would fail seeding are dropped here instead.
	minPromptLength = 10
)

// DraftRequest describes a question drafting task.
type DraftRequest struct {
	Topic      string
	Category   string
	Difficulty string
	Count      int
}

// IdealAnswer is a drafted model answer with its key concepts.
type IdealAnswer struct {
	IdealAnswer string   `json:"ideal_answer"`
	Concepts    []string `json:"concepts"`
}

// DraftQuestions asks the model for a set of questions on a topic and returns
// them as bank entries ready for review. Category and difficulty come from the
// request, not the model, so drafted entries always pass bank validation.
func DraftQuestions(ctx context.Context, client Client, req DraftRequest) ([]question.Entry, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, fmt.Errorf("draft topic is empty")
	}

	category, err := normalizeCategory(req.Category)
	if err != nil {
		return nil, err
	}
	difficulty, err := normalizeDifficulty(req.Difficulty)
	if err != nil {
		return nil, err
	}

	count := req.Count
	if count <= 0 {
		count = defaultDraftCount
	}
	if count > maxDraftCount {
		count = maxDraftCount
	}

	task := fmt.Sprintf(
		"Draft %d original %s interview questions at %s difficulty about: %s",
		count, category, difficulty, strings.TrimSpace(req.Topic))

	raw, err := client.GenerateJSON(ctx, BuildGenerationPrompt(QuestionDraftSchema(), task), TierStandard)
	if err != nil {
		return nil, fmt.Errorf("failed to draft questions: %w", err)
	}

	var payload struct {
		Questions []struct {
			Prompt      string   `json:"prompt"`
			IdealAnswer string   `json:"ideal_answer"`
			Concepts    []string `json:"concepts"`
			Tags        []string `json:"tags"`
		} `json:"questions"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse drafted questions: %w", err)
	}

	var entries []question.Entry
	for _, q := range payload.Questions {
		prompt := strings.TrimSpace(q.Prompt)
		if len(prompt) < minPromptLength {
			continue
		}
		entries = append(entries, question.Entry{
			Category:    category,
			Difficulty:  difficulty,
			Prompt:      prompt,
			IdealAnswer: strings.TrimSpace(q.IdealAnswer),
			Concepts:    cleanList(q.Concepts),
			Tags:        cleanList(q.Tags),
			Source:      "generated",
		})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("model returned no usable questions")
	}

	return entries, nil
}

// DraftIdealAnswer asks the model for a model answer to one question prompt.
func DraftIdealAnswer(ctx context.Context, client Client, prompt, category string) (*IdealAnswer, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("question prompt is empty")
	}

	normalized, err := normalizeCategory(category)
	if err != nil {
		return nil, err
	}

	task := fmt.Sprintf("Write the model answer for this %s interview question: %s",
		normalized, strings.TrimSpace(prompt))

	raw, err := client.GenerateJSON(ctx, BuildGenerationPrompt(IdealAnswerSchema(), task), TierAdvanced)
	if err != nil {
		return nil, fmt.Errorf("failed to draft ideal answer: %w", err)
	}

	var answer IdealAnswer
	if err := json.Unmarshal([]byte(raw), &answer); err != nil {
		return nil, fmt.Errorf("failed to parse drafted answer: %w", err)
	}

	answer.IdealAnswer = strings.TrimSpace(answer.IdealAnswer)
	if answer.IdealAnswer == "" {
		return nil, fmt.Errorf("model returned an empty ideal answer")
	}
	answer.Concepts = cleanList(answer.Concepts)

	return &answer, nil
}

func normalizeCategory(category string) (string, error) {
	category = strings.TrimSpace(strings.ToLower(category))
	switch category {
	case "":
		return "technical", nil
	case "technical", "behavioral", "system_design":
		return category, nil
	default:
		return "", fmt.Errorf("unknown category: %s (must be technical, behavioral, or system_design)", category)
	}
}

func normalizeDifficulty(difficulty string) (string, error) {
	difficulty = strings.TrimSpace(strings.ToLower(difficulty))
	switch difficulty {
	case "":
		return "medium", nil
	case "easy", "medium", "hard":
		return difficulty, nil
	default:
		return "", fmt.Errorf("unknown difficulty: %s (must be easy, medium, or hard)", difficulty)
	}
}

func cleanList(items []string) []string {
	var out []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Package generation - schema.go provides schema-driven prompt construction.
package generation

import (
	"fmt"
	"strings"
)

// GenerationSchema defines the JSON structure a drafting task must produce.
// It gives every prompt the same shape: task description, output contract,
// ground rules.
type GenerationSchema struct {
	Name        string        // Schema name (e.g., "QuestionDraft")
	Description string        // System prompt preamble describing the drafting task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the drafted output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", nested shapes
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildGenerationPrompt constructs the LLM prompt from schema and task text.
func BuildGenerationPrompt(schema GenerationSchema, task string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n")
	sb.WriteString("- Write in plain interview language a candidate would actually hear.\n\n")

	// Task
	sb.WriteString("Task:\n\"\"\"\n")
	sb.WriteString(task)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// --- Predefined Schemas ---

// QuestionDraftSchema returns the drafting schema for interview question sets.
func QuestionDraftSchema() GenerationSchema {
	return GenerationSchema{
		Name: "QuestionDraft",
		Description: `You are an experienced interviewer preparing a question bank.
Draft original interview questions for the topic, category, and difficulty given in the task.
Each question needs a model answer a strong candidate would give, and the key concepts that answer must mention.
Questions must stand alone: no "as discussed above", no references to other questions.`,
		Fields: []SchemaField{
			{
				Name:        "questions",
				Type:        "[{\"prompt\": \"string\", \"ideal_answer\": \"string\", \"concepts\": [\"string\"], \"tags\": [\"string\"]}]",
				Description: "One entry per drafted question",
				Required:    true,
			},
		},
	}
}

// IdealAnswerSchema returns the drafting schema for a single model answer.
func IdealAnswerSchema() GenerationSchema {
	return GenerationSchema{
		Name: "IdealAnswer",
		Description: `You are an experienced interviewer writing the model answer for one interview question.
Write the answer a strong candidate would give: correct, complete, and conversational.
Then list the key concepts the answer relies on, using short canonical names (e.g., "caching", "load balancing").`,
		Fields: []SchemaField{
			{
				Name:        "ideal_answer",
				Type:        "\"string\"",
				Description: "The model answer, 3-8 sentences",
				Required:    true,
			},
			{
				Name:        "concepts",
				Type:        "[\"string\"]",
				Description: "Key concepts the answer must mention",
				Required:    true,
			},
		},
	}
}

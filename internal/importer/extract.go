package importer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	// minQuestionLength filters out fragments like "Why?" that carry no
	// standalone meaning off the page.
	minQuestionLength = 10
	// maxQuestionLength filters out whole paragraphs that merely end with a
	// question.
	maxQuestionLength = 300
)

// listNumbering matches leading numbering like "1.", "Q3:", "Question 12 -".
var listNumbering = regexp.MustCompile(`(?i)^(?:q(?:uestion)?\s*)?\d+\s*[.):\-]\s*`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// ExtractQuestions pulls interview questions out of an HTML page. Question
// list pages put them in list items or headings; a candidate element counts
// when its text ends with a question mark and fits the length bounds.
// Duplicates are dropped case-insensitively, document order is preserved.
func ExtractQuestions(htmlContent string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	removeNoise(doc)

	seen := make(map[string]bool)
	questions := make([]string, 0)

	doc.Find("li, h1, h2, h3, h4, dt, p, td").Each(func(_ int, s *goquery.Selection) {
		// Skip container elements; a li wrapping a sublist would otherwise
		// swallow every nested question as one blob.
		if s.Children().Is("ul, ol, li") {
			return
		}

		text := normalizeQuestion(s.Text())
		if !isQuestion(text) {
			return
		}

		key := strings.ToLower(text)
		if seen[key] {
			return
		}
		seen[key] = true
		questions = append(questions, text)
	})

	return questions, nil
}

// normalizeQuestion collapses whitespace and strips list numbering.
func normalizeQuestion(text string) string {
	text = whitespaceRun.ReplaceAllString(strings.TrimSpace(text), " ")
	return strings.TrimSpace(listNumbering.ReplaceAllString(text, ""))
}

func isQuestion(text string) bool {
	if !strings.HasSuffix(text, "?") {
		return false
	}
	return len(text) >= minQuestionLength && len(text) <= maxQuestionLength
}

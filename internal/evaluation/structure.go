package evaluation

import "strings"

// Indicator phrases are matched as substrings of the normalized answer.
// Flow words are matched as whole tokens instead, because short connectives
// like "then" appear inside too many longer words to trust containment.
var (
	introPhrases = []string{"first", "to start", "essentially", "overall"}

	introOpeners = []string{"so ", "well ", "i would"}

	examplePhrases = []string{"for example", "for instance", "such as", "specifically"}

	conclusionPhrases = []string{"in conclusion", "to summarize", "finally", "the key takeaway"}

	situationPhrases = []string{"situation", "when i was", "at my previous", "we had a", "there was a"}

	taskPhrases = []string{"task", "my responsibility", "i needed to", "the goal was", "i was asked"}

	actionPhrases = []string{"action", "i decided", "i implemented", "i worked", "so i", "i started"}

	resultPhrases = []string{"result", "outcome", "in the end", "we achieved", "this led to", "ultimately"}

	flowWords = []string{"first", "second", "then", "next", "finally", "also", "additionally", "however", "therefore"}
)

// analyzeStructure detects discourse markers in an answer and scores its
// organization. Phrase detection runs on normalized text; sentence counting
// needs the punctuation of the raw text.
func analyzeStructure(raw, norm string, category Category) StructureAnalysis {
	star := STARBreakdown{
		Situation: containsAny(norm, situationPhrases),
		Task:      containsAny(norm, taskPhrases),
		Action:    containsAny(norm, actionPhrases),
		Result:    containsAny(norm, resultPhrases),
	}

	analysis := StructureAnalysis{
		HasIntroduction: containsAny(norm, introPhrases) || opensWith(norm, introOpeners),
		HasExamples:     containsAny(norm, examplePhrases),
		HasConclusion:   containsAny(norm, conclusionPhrases),
		UsesSTAR:        star.Count() >= 3,
		STAR:            star,
	}

	score := 0
	if analysis.HasIntroduction {
		score += 20
	}
	if analysis.HasExamples {
		score += 25
	}
	if analysis.HasConclusion {
		score += 15
	}

	// STAR components count double for behavioral questions, where the
	// structure is expected rather than a bonus.
	starCredit := 5
	if category == CategoryBehavioral {
		starCredit = 10
	}
	score += star.Count() * starCredit

	sentences := len(splitSentences(raw))
	if sentences >= 3 {
		score += 10
	}
	if sentences >= 5 {
		score += 10
	}

	tokens := tokenSet(norm)
	flowCredit := 0
	for _, word := range flowWords {
		if _, ok := tokens[word]; ok {
			flowCredit += 5
		}
	}
	if flowCredit > 20 {
		flowCredit = 20
	}
	score += flowCredit

	analysis.OrganizationScore = clampScore(score)
	return analysis
}

func containsAny(norm string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(norm, phrase) {
			return true
		}
	}
	return false
}

func opensWith(norm string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(norm, prefix) {
			return true
		}
	}
	return false
}

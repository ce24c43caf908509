package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/daniel/interview-coach/internal/db"
	"github.com/daniel/interview-coach/internal/evaluation"
	"github.com/daniel/interview-coach/internal/scheduler"
	"github.com/daniel/interview-coach/internal/server/middleware"
	"github.com/daniel/interview-coach/internal/types"
)

// ---------------------------------------------------------------------
// Attempt Handlers
// ---------------------------------------------------------------------

// handleEvaluate scores an answer without persisting anything. The ideal
// answer and keywords come inline instead of from a bank question.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req types.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result := evaluation.Evaluate(req.AnswerText, req.IdealAnswer, evaluation.Options{
		Concepts: req.Concepts,
		Category: evaluation.Category(req.Category),
	})

	s.jsonResponse(w, http.StatusOK, result)
}

// handleSubmitAttempt evaluates an answer against a bank question, persists
// the attempt, and advances the question's review card.
func (s *Server) handleSubmitAttempt(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.SubmitAttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	question, err := s.db.GetQuestion(r.Context(), req.QuestionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if question == nil {
		notFound := &ErrQuestionNotFound{QuestionID: req.QuestionID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	result := evaluation.Evaluate(req.AnswerText, question.IdealAnswer, evaluation.Options{
		Concepts: question.Concepts,
		Category: evaluation.Category(question.Category),
	})

	attempt, err := s.db.CreateAttempt(r.Context(), &db.AttemptInput{
		UserID:       userID,
		QuestionID:   question.ID,
		AnswerText:   req.AnswerText,
		Result:       result,
		OverallScore: result.OverallScore,
		Verdict:      string(result.Verdict),
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	// A scheduling failure must not lose an already-persisted attempt.
	s.advanceReviewCard(r.Context(), userID, question.ID, result.OverallScore)

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"attempt_id": attempt.ID,
		"result":     result,
	})
}

// handleSubmitAttemptStream is the SSE variant of handleSubmitAttempt. The
// evaluation itself is synchronous; the stream reveals it stage by stage so
// clients can render progressively.
func (s *Server) handleSubmitAttemptStream(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.SubmitAttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	question, err := s.db.GetQuestion(r.Context(), req.QuestionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if question == nil {
		notFound := &ErrQuestionNotFound{QuestionID: req.QuestionID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	result := evaluation.Evaluate(req.AnswerText, question.IdealAnswer, evaluation.Options{
		Concepts: question.Concepts,
		Category: evaluation.Category(question.Category),
	})

	emit := func(event string, data any) {
		if err := sse.WriteEvent(event, data); err != nil {
			log.Printf("Error writing SSE event: %v", err)
		}
	}

	emit("normalize", map[string]any{"word_count": result.Fluency.WordCount})
	emit("coverage", map[string]any{
		"covered": result.CoveredConcepts,
		"missed":  result.MissedConcepts,
	})
	emit("structure", result.Structure)
	emit("fluency", result.Fluency)
	emit("scores", map[string]any{
		"overall_score": result.OverallScore,
		"verdict":       result.Verdict,
		"dimensions":    result.Dimensions,
	})
	emit("feedback", map[string]any{
		"feedback":     result.Feedback,
		"strengths":    result.Strengths,
		"improvements": result.Improvements,
	})

	attempt, err := s.db.CreateAttempt(r.Context(), &db.AttemptInput{
		UserID:       userID,
		QuestionID:   question.ID,
		AnswerText:   req.AnswerText,
		Result:       result,
		OverallScore: result.OverallScore,
		Verdict:      string(result.Verdict),
	})
	if err != nil {
		log.Printf("Failed to save streamed attempt: %v", err)
		sse.WriteError("Failed to save attempt: " + err.Error())
		return
	}

	s.advanceReviewCard(r.Context(), userID, question.ID, result.OverallScore)

	emit("result", map[string]any{
		"attempt_id": attempt.ID,
		"result":     result,
	})
	sse.WriteComplete(attempt.ID.String(), "completed")
}

// handleListAttempts lists the authenticated user's attempts, newest first
func (s *Server) handleListAttempts(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	filters := db.AttemptFilters{
		Verdict: r.URL.Query().Get("verdict"),
		Limit:   parseQueryInt(r, "limit", 50, 200),
		Offset:  parseQueryInt(r, "offset", 0, 0),
	}
	if qidStr := r.URL.Query().Get("question_id"); qidStr != "" {
		qid, err := uuid.Parse(qidStr)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid question ID")
			return
		}
		filters.QuestionID = qid
	}

	attempts, err := s.db.ListAttempts(r.Context(), userID, filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if attempts == nil {
		attempts = []db.Attempt{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"attempts": attempts,
		"count":    len(attempts),
		"limit":    filters.Limit,
		"offset":   filters.Offset,
	})
}

// handleGetAttempt retrieves one of the authenticated user's attempts
func (s *Server) handleGetAttempt(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	attemptID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid attempt ID")
		return
	}

	attempt, err := s.db.GetAttempt(r.Context(), userID, attemptID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if attempt == nil {
		notFound := &ErrAttemptNotFound{AttemptID: attemptID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, attempt)
}

// advanceReviewCard folds an attempt score into the question's spaced
// repetition card. Errors are logged, not surfaced: scheduling is best-effort
// relative to the attempt itself.
func (s *Server) advanceReviewCard(ctx context.Context, userID, questionID uuid.UUID, score int) {
	now := time.Now().UTC()

	existing, err := s.db.GetReviewCard(ctx, userID, questionID)
	if err != nil {
		log.Printf("Error loading review card for question %s: %v", questionID, err)
		return
	}

	card := scheduler.NewCard(now)
	if existing != nil {
		card = scheduler.Card{
			Ease:         existing.Ease,
			IntervalDays: existing.IntervalDays,
			Repetitions:  existing.Repetitions,
			DueAt:        existing.DueAt,
		}
		if existing.ReviewedAt != nil {
			card.ReviewedAt = *existing.ReviewedAt
		}
	}

	advanced := scheduler.Advance(card, scheduler.QualityFromScore(score), now)

	reviewedAt := advanced.ReviewedAt
	err = s.db.UpsertReviewCard(ctx, &db.ReviewCard{
		UserID:       userID,
		QuestionID:   questionID,
		Ease:         advanced.Ease,
		IntervalDays: advanced.IntervalDays,
		Repetitions:  advanced.Repetitions,
		DueAt:        advanced.DueAt,
		ReviewedAt:   &reviewedAt,
	})
	if err != nil {
		log.Printf("Error saving review card for question %s: %v", questionID, err)
	}
}

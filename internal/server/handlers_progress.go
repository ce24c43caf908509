package server

import (
	"net/http"
	"time"

	"github.com/daniel/interview-coach/internal/db"
	"github.com/daniel/interview-coach/internal/progress"
	"github.com/daniel/interview-coach/internal/server/middleware"
)

// ---------------------------------------------------------------------
// Progress and Review Handlers
// ---------------------------------------------------------------------

// handleGetProgress aggregates the authenticated user's practice history
func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	// Summaries come back oldest first, the order Build expects.
	summaries, err := s.db.ListAttemptSummaries(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	attempts := make([]progress.Attempt, len(summaries))
	for i, sum := range summaries {
		attempts[i] = progress.Attempt{
			QuestionID:   sum.QuestionID,
			Category:     sum.Category,
			OverallScore: sum.OverallScore,
			Verdict:      sum.Verdict,
			CreatedAt:    sum.CreatedAt,
		}
	}

	report := progress.Build(attempts, time.Now().UTC())
	s.jsonResponse(w, http.StatusOK, report)
}

// handleListDueReviews lists review cards due now, most overdue first
func (s *Server) handleListDueReviews(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	now := time.Now().UTC()
	limit := parseQueryInt(r, "limit", 50, 200)

	reviews, err := s.db.ListDueReviews(r.Context(), userID, now, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if reviews == nil {
		reviews = []db.DueReview{}
	}

	total, due, err := s.db.CountReviewCards(r.Context(), userID, now)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"reviews":     reviews,
		"count":       len(reviews),
		"total_cards": total,
		"due_cards":   due,
	})
}

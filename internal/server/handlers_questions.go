package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/daniel/interview-coach/internal/db"
	"github.com/daniel/interview-coach/internal/server/middleware"
	"github.com/daniel/interview-coach/internal/types"
)

// parseQueryInt parses a non-negative integer query parameter with a default
// and an optional cap (maxValue <= 0 means uncapped).
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

// ---------------------------------------------------------------------
// Question Handlers
// ---------------------------------------------------------------------

// handleListQuestions lists bank questions with optional filters
func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	filters := db.QuestionFilters{
		Category:   r.URL.Query().Get("category"),
		Difficulty: r.URL.Query().Get("difficulty"),
		Tag:        r.URL.Query().Get("tag"),
		Limit:      parseQueryInt(r, "limit", 50, 200),
		Offset:     parseQueryInt(r, "offset", 0, 0),
	}

	questions, err := s.db.ListQuestions(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if questions == nil {
		questions = []db.Question{}
	}

	total, err := s.db.CountQuestions(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"questions": questions,
		"total":     total,
		"limit":     filters.Limit,
		"offset":    filters.Offset,
	})
}

// handleGetQuestion retrieves a single question by ID
func (s *Server) handleGetQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid question ID")
		return
	}

	question, err := s.db.GetQuestion(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if question == nil {
		s.errorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, question)
}

// handleCreateQuestion adds a question to the bank
func (s *Server) handleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req types.CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	question, err := s.db.CreateQuestion(r.Context(), &db.QuestionInput{
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		Prompt:      req.Prompt,
		IdealAnswer: req.IdealAnswer,
		Concepts:    req.Concepts,
		Tags:        req.Tags,
		Source:      req.Source,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, question)
}

// handleUpdateQuestion applies a partial update to a question
func (s *Server) handleUpdateQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid question ID")
		return
	}

	var req types.UpdateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	update := &db.QuestionUpdate{
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		Prompt:      req.Prompt,
		IdealAnswer: req.IdealAnswer,
		Concepts:    req.Concepts,
		Tags:        req.Tags,
		Source:      req.Source,
	}

	if err := s.db.UpdateQuestion(r.Context(), id, update); err != nil {
		if err.Error() == "question not found: "+id.String() {
			s.errorResponse(w, http.StatusNotFound, "Question not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	question, err := s.db.GetQuestion(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, question)
}

// handleDeleteQuestion deletes a question and its attempts
func (s *Server) handleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid question ID")
		return
	}

	if err := s.db.DeleteQuestion(r.Context(), id); err != nil {
		if err.Error() == "question not found: "+id.String() {
			s.errorResponse(w, http.StatusNotFound, "Question not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ---------------------------------------------------------------------
// Bookmark Handlers
// ---------------------------------------------------------------------

// handleAddBookmark saves a question for the authenticated user
func (s *Server) handleAddBookmark(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	questionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid question ID")
		return
	}

	question, err := s.db.GetQuestion(r.Context(), questionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if question == nil {
		s.errorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	if err := s.db.AddBookmark(r.Context(), userID, questionID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "bookmarked"})
}

// handleRemoveBookmark removes a saved question
func (s *Server) handleRemoveBookmark(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	questionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid question ID")
		return
	}

	if err := s.db.RemoveBookmark(r.Context(), userID, questionID); err != nil {
		if err.Error() == "bookmark not found: "+questionID.String() {
			s.errorResponse(w, http.StatusNotFound, "Bookmark not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "removed"})
}

// handleListBookmarks lists the authenticated user's saved questions
func (s *Server) handleListBookmarks(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	questions, err := s.db.ListBookmarkedQuestions(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if questions == nil {
		questions = []db.Question{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"questions": questions,
		"count":     len(questions),
	})
}

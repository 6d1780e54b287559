// Package server exposes the practice and coaching engines over a small JSON
// HTTP surface.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dinkwell/dinkwell/internal/api"
	"github.com/dinkwell/dinkwell/internal/coaching"
	"github.com/dinkwell/dinkwell/internal/session"
	"github.com/dinkwell/dinkwell/internal/skill"
	"github.com/dinkwell/dinkwell/internal/streak"
)

// StoreFactory builds a coaching progress store scoped to one user.
type StoreFactory func(userID string) coaching.Store

// Handler serves the dinkwell API.
type Handler struct {
	sessions session.Repository
	skills   skill.Repository
	catalog  *coaching.Catalog
	stores   StoreFactory
	logger   *slog.Logger
	now      func() time.Time
}

// NewHandler creates a Handler. A nil now func defaults to time.Now and a nil
// logger to slog.Default().
func NewHandler(
	sessions session.Repository,
	skills skill.Repository,
	catalog *coaching.Catalog,
	stores StoreFactory,
	logger *slog.Logger,
	now func() time.Time,
) *Handler {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		sessions: sessions,
		skills:   skills,
		catalog:  catalog,
		stores:   stores,
		logger:   logger,
		now:      now,
	}
}

// Register installs the API routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/streak", h.handleStreak)
	mux.HandleFunc("GET /api/skills", h.handleSkills)
	mux.HandleFunc("POST /api/sessions", h.handleLogSession)
	mux.HandleFunc("GET /api/progress", h.handleProgress)
	mux.HandleFunc("POST /api/progress/complete", h.handleCompleteModule)
}

func (h *Handler) handleStreak(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, api.ErrorKindInvalidInput, "user_id is required")
		return
	}

	sessions, err := h.sessions.FindByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to load sessions", slog.String("user_id", userID), slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, api.ErrorKindStoreIO, "failed to load sessions")
		return
	}

	writeJSON(w, http.StatusOK, api.StreakResponse{
		UserID: userID,
		Streak: streak.Compute(sessions, h.now()),
	})
}

func (h *Handler) handleSkills(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, api.ErrorKindInvalidInput, "user_id is required")
		return
	}

	totals, err := h.skills.Totals(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to load skill totals", slog.String("user_id", userID), slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, api.ErrorKindStoreIO, "failed to load skill totals")
		return
	}

	response := api.SkillsResponse{UserID: userID}
	for _, id := range skill.All() {
		t, ok := totals[id]
		if !ok {
			continue
		}
		response.Skills = append(response.Skills, api.SkillStatus{
			SkillID: id,
			Label:   id.Label(),
			Totals:  t,
			Ladder:  skill.XPToLevel(t.XP),
		})
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) handleLogSession(w http.ResponseWriter, r *http.Request) {
	var req api.LogSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, api.ErrorKindInvalidInput, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if len(req.Skills) == 0 {
		writeError(w, http.StatusBadRequest, api.ErrorKindInvalidInput, "at least one skill entry is required")
		return
	}
	for i, entry := range req.Skills {
		if err := entry.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, api.ErrorKindInvalidInput, fmt.Sprintf("skill entry %d: %v", i, err))
			return
		}
	}

	s := &session.Session{
		UserID:   req.UserID,
		Date:     req.Date,
		Minutes:  req.TotalMinutes(),
		Focus:    req.Focus,
		Issues:   req.Issues,
		WentWell: req.WentWell,
		Notes:    req.Notes,
	}
	if err := s.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, api.ErrorKindInvalidInput, err.Error())
		return
	}

	if err := h.sessions.Create(r.Context(), s); err != nil {
		h.logger.Error("failed to create session", slog.String("user_id", req.UserID), slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, api.ErrorKindStoreIO, "failed to store session")
		return
	}
	totals, err := h.skills.ApplyEntries(r.Context(), req.UserID, req.Skills)
	if err != nil {
		h.logger.Error("failed to apply practice entries", slog.String("user_id", req.UserID), slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, api.ErrorKindStoreIO, "failed to update skill totals")
		return
	}

	h.logger.Info("session logged",
		slog.String("user_id", req.UserID),
		slog.Int64("session_id", s.ID),
		slog.Int("minutes", s.Minutes),
	)
	writeJSON(w, http.StatusOK, api.LogSessionResponse{SessionID: s.ID, Totals: totals})
}

func (h *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, api.ErrorKindInvalidInput, "user_id is required")
		return
	}

	tracker := coaching.NewTracker(h.catalog, h.stores(userID), h.logger)
	progress, err := tracker.Progress(r.Context())
	if err != nil {
		h.logger.Error("failed to load progress", slog.String("user_id", userID), slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, api.ErrorKindStoreIO, "failed to load progress")
		return
	}

	writeJSON(w, http.StatusOK, api.ProgressResponse{
		UserID:   userID,
		Progress: progress,
		Levels:   levelStatuses(tracker, progress),
	})
}

func (h *Handler) handleCompleteModule(w http.ResponseWriter, r *http.Request) {
	var req api.CompleteModuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, api.ErrorKindInvalidInput, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, api.ErrorKindInvalidInput, "userId is required")
		return
	}
	if _, _, ok := h.catalog.ModuleByID(req.ModuleID); !ok {
		writeError(w, http.StatusNotFound, api.ErrorKindNotFound, fmt.Sprintf("unknown module %q", req.ModuleID))
		return
	}

	tracker := coaching.NewTracker(h.catalog, h.stores(req.UserID), h.logger)
	progress, err := tracker.MarkModuleComplete(r.Context(), req.ModuleID)
	if err != nil {
		h.logger.Error("failed to complete module",
			slog.String("user_id", req.UserID),
			slog.String("module_id", req.ModuleID),
			slog.Any("error", err),
		)
		writeError(w, http.StatusInternalServerError, api.ErrorKindStoreIO, "failed to store progress")
		return
	}

	response := api.CompleteModuleResponse{Progress: progress}
	if next, ok := tracker.NextModuleID(progress, req.ModuleID); ok {
		response.NextModuleID = next
	}
	writeJSON(w, http.StatusOK, response)
}

func levelStatuses(tracker *coaching.Tracker, progress coaching.UserProgress) []api.LevelStatus {
	levels := tracker.Catalog().Levels
	statuses := make([]api.LevelStatus, 0, len(levels))
	for _, level := range levels {
		statuses = append(statuses, api.LevelStatus{
			LevelID:         level.ID,
			Title:           level.Title,
			Order:           level.Order,
			State:           tracker.StateForLevel(progress, level),
			PercentComplete: tracker.PercentCompleteForLevel(level, progress),
		})
	}
	return statuses
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil && !errors.Is(err, http.ErrHandlerTimeout) {
		slog.Default().Error("failed to encode response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, kind api.ErrorKind, message string) {
	writeJSON(w, status, api.ErrorResponse{Error: api.ErrorDetail{Kind: kind, Message: message}})
}

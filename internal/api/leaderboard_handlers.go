package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	errorvalues "github.com/karam/musabaqa/internal/error_values"
	"github.com/karam/musabaqa/pkg/entity"
	"github.com/karam/musabaqa/pkg/httputil"
)

func (s *Server) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("leaderboard error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	slug := chi.URLParam(r, "slug")
	boardType := r.URL.Query().Get("type")
	if boardType == "" {
		boardType = "overall"
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	var entries []entity.LeaderboardEntry
	switch boardType {
	case "overall":
		entries, err = s.leaderboardService.Overall(ctx, slug, uid)
	case "daily":
		dayNumber, convErr := strconv.Atoi(r.URL.Query().Get("day"))
		if convErr != nil || dayNumber < 1 {
			logger.Error("leaderboard error: invalid day query")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "daily leaderboard requires a valid day query parameter", nil)
			return
		}
		entries, err = s.leaderboardService.Daily(ctx, slug, uid, dayNumber)
	default:
		logger.Error("leaderboard error: unknown type")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "type must be overall or daily", nil)
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGroupNotFound):
			logger.Error("leaderboard error: group not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "group not found", nil)
		case errors.Is(err, errorvalues.ErrNotMember):
			logger.Error("leaderboard error: not a member")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "membership required", nil)
		default:
			logger.Error("leaderboard error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error building leaderboard", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entries)
}

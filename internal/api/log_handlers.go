package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	errorvalues "github.com/karam/musabaqa/internal/error_values"
	"github.com/karam/musabaqa/internal/service"
	"github.com/karam/musabaqa/pkg/httputil"
)

func (s *Server) GetLogs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get logs error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	slug := chi.URLParam(r, "slug")
	dayNumber := 0
	if dayParam := r.URL.Query().Get("day"); dayParam != "" {
		dayNumber, err = strconv.Atoi(dayParam)
		if err != nil {
			logger.Error("get logs error: invalid day query")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid day query parameter", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	logs, err := s.logsService.ListLogs(ctx, slug, uid, dayNumber)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGroupNotFound):
			logger.Error("get logs error: group not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "group not found", nil)
		case errors.Is(err, errorvalues.ErrNotMember):
			logger.Error("get logs error: not a member")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "membership required", nil)
		default:
			logger.Error("get logs error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error getting logs", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, logs)
}

func (s *Server) UpsertLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("upsert log error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	slug := chi.URLParam(r, "slug")
	var req service.UpsertLogRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("upsert log error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ip, ua := getRequestMeta(r)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	log, err := s.logsService.UpsertMyLog(ctx, slug, uid, &req, service.RequestMeta{IP: ip, UserAgent: ua})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGroupNotFound):
			logger.Error("upsert log error: group not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "group not found", nil)
		case errors.Is(err, errorvalues.ErrNotMember):
			logger.Error("upsert log error: not a member")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "membership required", nil)
		case errors.Is(err, errorvalues.ErrOutsideRamadan):
			logger.Error("upsert log error: outside competition window")
			httputil.WriteErrorResponse(w, http.StatusConflict, "logging is only open during the competition", nil)
		case errors.Is(err, errorvalues.ErrDayLocked):
			logger.Error("upsert log error: day locked")
			httputil.WriteErrorResponse(w, http.StatusConflict, "this day is locked by an admin", nil)
		default:
			logger.Error("upsert log error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error saving log", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, log)
	logger.Info("daily log saved", slog.String("slug", slug), slog.Int("day", log.DayNumber))
}

func (s *Server) AdminOverrideLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("admin log error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	slug := chi.URLParam(r, "slug")
	var req service.AdminOverrideLogRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("admin log error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ip, ua := getRequestMeta(r)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	log, err := s.logsService.AdminOverrideLog(ctx, slug, uid, &req, service.RequestMeta{IP: ip, UserAgent: ua})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGroupNotFound):
			logger.Error("admin log error: group not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "group not found", nil)
		case errors.Is(err, errorvalues.ErrNotMember):
			logger.Error("admin log error: not a member")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "membership required", nil)
		case errors.Is(err, errorvalues.ErrNotAdmin):
			logger.Error("admin log error: not an admin")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "admin role required", nil)
		case errors.Is(err, errorvalues.ErrMemberNotFound):
			logger.Error("admin log error: target not a member")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "member not found", nil)
		case errors.Is(err, errorvalues.ErrOutsideRamadan):
			logger.Error("admin log error: day out of range")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "day number out of range", nil)
		default:
			logger.Error("admin log error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error saving log", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, log)
	logger.Info("admin log override", slog.String("slug", slug), slog.String("target", log.UserID.String()), slog.Int("day", log.DayNumber))
}

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
	"github.com/google/uuid"
	errorvalues "github.com/karam/musabaqa/internal/error_values"
	"github.com/karam/musabaqa/internal/service"
	"github.com/karam/musabaqa/pkg/entity"
	"github.com/karam/musabaqa/pkg/httputil"
)

type JoinGroupRequest struct {
	InviteCode string `json:"invite_code"`
}

type SetDayLockRequest struct {
	Action string `json:"action"`
}

type ChangeRoleRequest struct {
	Role entity.Role `json:"role"`
}

func (s *Server) CreateGroup(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create group error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req service.CreateGroupRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create group error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	view, err := s.groupsService.CreateGroup(ctx, uid, &req)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSlugTaken) {
			logger.Error("create group error: slug taken")
			httputil.WriteErrorResponse(w, http.StatusConflict, "group slug already taken", nil)
			return
		}
		logger.Error("create group error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error creating group", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, view)
	logger.Info("group created", slog.String("slug", view.Group.Slug))
}

func (s *Server) JoinGroup(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("join group error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req JoinGroupRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("join group error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.groupsService.Join(ctx, uid, req.InviteCode)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInviteCodeInvalid) {
			logger.Error("join group error: invalid invite code")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "invalid invite code", nil)
			return
		}
		logger.Error("join group error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error joining group", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("joined group", slog.String("slug", result.Slug))
}

func (s *Server) GetGroup(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get group error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	slug := chi.URLParam(r, "slug")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	view, err := s.groupsService.GetGroup(ctx, slug, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGroupNotFound):
			logger.Error("get group error: group not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "group not found", nil)
		case errors.Is(err, errorvalues.ErrNotMember):
			logger.Error("get group error: not a member")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "membership required", nil)
		default:
			logger.Error("get group error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error getting group", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
}

func (s *Server) UpdateGroupSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update settings error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	slug := chi.URLParam(r, "slug")
	var req service.UpdateSettingsRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update settings error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ip, ua := getRequestMeta(r)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.groupsService.UpdateSettings(ctx, slug, uid, &req, service.RequestMeta{IP: ip, UserAgent: ua})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGroupNotFound):
			logger.Error("update settings error: group not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "group not found", nil)
		case errors.Is(err, errorvalues.ErrNotMember):
			logger.Error("update settings error: not a member")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "membership required", nil)
		case errors.Is(err, errorvalues.ErrNotAdmin):
			logger.Error("update settings error: not an admin")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "admin role required", nil)
		default:
			logger.Error("update settings error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error updating settings", nil)
		}
		return
	}
	httputil.WriteMessageResponse(w, http.StatusOK, "settings updated")
	logger.Info("group settings updated", slog.String("slug", slug))
}

func (s *Server) GetDays(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get days error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	slug := chi.URLParam(r, "slug")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	days, err := s.groupsService.Days(ctx, slug, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGroupNotFound):
			logger.Error("get days error: group not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "group not found", nil)
		case errors.Is(err, errorvalues.ErrNotMember):
			logger.Error("get days error: not a member")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "membership required", nil)
		default:
			logger.Error("get days error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error getting days", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, days)
}

func (s *Server) SetDayLock(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("day lock error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	slug := chi.URLParam(r, "slug")
	dayNumber, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		logger.Error("day lock error: invalid day number")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid day number", nil)
		return
	}
	var req SetDayLockRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("day lock error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ip, ua := getRequestMeta(r)
	meta := service.RequestMeta{IP: ip, UserAgent: ua}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	switch req.Action {
	case "lock":
		err = s.groupsService.LockDay(ctx, slug, uid, dayNumber, meta)
	case "unlock":
		err = s.groupsService.UnlockDay(ctx, slug, uid, dayNumber, meta)
	default:
		logger.Error("day lock error: unknown action")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "action must be lock or unlock", nil)
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGroupNotFound):
			logger.Error("day lock error: group not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "group not found", nil)
		case errors.Is(err, errorvalues.ErrNotMember):
			logger.Error("day lock error: not a member")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "membership required", nil)
		case errors.Is(err, errorvalues.ErrNotAdmin):
			logger.Error("day lock error: not an admin")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "admin role required", nil)
		case errors.Is(err, errorvalues.ErrOutsideRamadan):
			logger.Error("day lock error: day out of range")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "day number out of range", nil)
		default:
			logger.Error("day lock error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error changing day lock", nil)
		}
		return
	}
	httputil.WriteMessageResponse(w, http.StatusOK, "day "+req.Action+"ed")
	logger.Info("day lock changed", slog.String("slug", slug), slog.Int("day", dayNumber), slog.String("action", req.Action))
}

func (s *Server) GetMembers(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get members error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	slug := chi.URLParam(r, "slug")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	members, err := s.groupsService.ListMembers(ctx, slug, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGroupNotFound):
			logger.Error("get members error: group not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "group not found", nil)
		case errors.Is(err, errorvalues.ErrNotMember):
			logger.Error("get members error: not a member")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "membership required", nil)
		default:
			logger.Error("get members error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error getting members", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, members)
}

func (s *Server) KickMember(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("kick member error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	slug := chi.URLParam(r, "slug")
	targetID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		logger.Error("kick member error: invalid user id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	ip, ua := getRequestMeta(r)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.groupsService.KickMember(ctx, slug, uid, targetID, service.RequestMeta{IP: ip, UserAgent: ua})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGroupNotFound):
			logger.Error("kick member error: group not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "group not found", nil)
		case errors.Is(err, errorvalues.ErrNotMember):
			logger.Error("kick member error: not a member")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "membership required", nil)
		case errors.Is(err, errorvalues.ErrNotAdmin):
			logger.Error("kick member error: not an admin")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "admin role required", nil)
		case errors.Is(err, errorvalues.ErrCannotKickSelf):
			logger.Error("kick member error: tried to kick self")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "cannot kick yourself", nil)
		case errors.Is(err, errorvalues.ErrMemberNotFound):
			logger.Error("kick member error: member not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "member not found", nil)
		default:
			logger.Error("kick member error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error kicking member", nil)
		}
		return
	}
	httputil.WriteMessageResponse(w, http.StatusOK, "member removed")
	logger.Info("member kicked", slog.String("slug", slug), slog.String("target", targetID.String()))
}

func (s *Server) ChangeMemberRole(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("change role error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	slug := chi.URLParam(r, "slug")
	targetID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		logger.Error("change role error: invalid user id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	var req ChangeRoleRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("change role error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.Role != entity.RoleAdmin && req.Role != entity.RoleMember {
		logger.Error("change role error: unknown role")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "role must be ADMIN or MEMBER", nil)
		return
	}
	ip, ua := getRequestMeta(r)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.groupsService.ChangeRole(ctx, slug, uid, targetID, req.Role, service.RequestMeta{IP: ip, UserAgent: ua})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGroupNotFound):
			logger.Error("change role error: group not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "group not found", nil)
		case errors.Is(err, errorvalues.ErrNotMember):
			logger.Error("change role error: not a member")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "membership required", nil)
		case errors.Is(err, errorvalues.ErrNotAdmin):
			logger.Error("change role error: not an admin")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "admin role required", nil)
		case errors.Is(err, errorvalues.ErrMemberNotFound):
			logger.Error("change role error: member not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "member not found", nil)
		default:
			logger.Error("change role error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error changing role", nil)
		}
		return
	}
	httputil.WriteMessageResponse(w, http.StatusOK, "role updated")
	logger.Info("member role changed", slog.String("slug", slug), slog.String("target", targetID.String()))
}

func (s *Server) GetInviteCode(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get invite error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	slug := chi.URLParam(r, "slug")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	code, err := s.groupsService.GetInviteCode(ctx, slug, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGroupNotFound):
			logger.Error("get invite error: group not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "group not found", nil)
		case errors.Is(err, errorvalues.ErrNotMember):
			logger.Error("get invite error: not a member")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "membership required", nil)
		default:
			logger.Error("get invite error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error getting invite code", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"invite_code": code})
}

func (s *Server) RegenerateInviteCode(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("regenerate invite error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	slug := chi.URLParam(r, "slug")
	ip, ua := getRequestMeta(r)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	code, err := s.groupsService.RegenerateInviteCode(ctx, slug, uid, service.RequestMeta{IP: ip, UserAgent: ua})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGroupNotFound):
			logger.Error("regenerate invite error: group not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "group not found", nil)
		case errors.Is(err, errorvalues.ErrNotMember):
			logger.Error("regenerate invite error: not a member")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "membership required", nil)
		case errors.Is(err, errorvalues.ErrNotAdmin):
			logger.Error("regenerate invite error: not an admin")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "admin role required", nil)
		default:
			logger.Error("regenerate invite error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error regenerating invite code", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"invite_code": code})
	logger.Info("invite code regenerated", slog.String("slug", slug))
}

package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/karam/musabaqa/internal/error_values"
	"github.com/karam/musabaqa/internal/ramadan"
	"github.com/karam/musabaqa/internal/repository"
	"github.com/karam/musabaqa/pkg/entity"
)

type LogsService struct {
	groupsRepo      repository.GroupsRepositoryI
	membershipsRepo repository.MembershipsRepositoryI
	logsRepo        repository.DailyLogsRepositoryI
	lockedDaysRepo  repository.LockedDaysRepositoryI
	auditRepo       repository.AuditRepositoryI
}

func NewLogsService(
	groupsRepo repository.GroupsRepositoryI,
	membershipsRepo repository.MembershipsRepositoryI,
	logsRepo repository.DailyLogsRepositoryI,
	lockedDaysRepo repository.LockedDaysRepositoryI,
	auditRepo repository.AuditRepositoryI,
) *LogsService {
	if groupsRepo == nil || membershipsRepo == nil || logsRepo == nil || lockedDaysRepo == nil || auditRepo == nil {
		log.Fatal("on logs service provided nil repos")
	}
	return &LogsService{
		groupsRepo:      groupsRepo,
		membershipsRepo: membershipsRepo,
		logsRepo:        logsRepo,
		lockedDaysRepo:  lockedDaysRepo,
		auditRepo:       auditRepo,
	}
}

// UpsertMyLog writes the caller's log for the live day. The day number is
// always derived from the group calendar, never taken from the caller, so
// members cannot backfill past days.
func (ls *LogsService) UpsertMyLog(ctx context.Context, slug string, userID uuid.UUID, req *UpsertLogRequest, meta RequestMeta) (*entity.DailyLog, error) {
	if err := validate.Struct(*req); err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			joined := errors.New("validation error: ")
			for _, fieldErr := range validationError {
				joined = errors.Join(joined, fieldErr)
			}
			return nil, joined
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	group, settings, err := ls.memberGroupWithSettings(ctx, slug, userID)
	if err != nil {
		return nil, err
	}

	dayNumber, ok := ramadan.CurrentDayNumber(settings, time.Now())
	if !ok {
		return nil, errorvalues.ErrOutsideRamadan
	}
	lockedDays, err := ls.lockedDaysRepo.ListByGroup(ctx, group.ID)
	if err != nil {
		return nil, errors.New("locked days repository error: " + err.Error())
	}
	for _, locked := range lockedDays {
		if locked == dayNumber {
			return nil, errorvalues.ErrDayLocked
		}
	}

	previous, err := ls.logsRepo.Get(ctx, userID, group.ID, dayNumber)
	if err != nil && !errors.Is(err, errorvalues.ErrLogNotFound) {
		return nil, errors.New("daily logs repository error: " + err.Error())
	}

	// Raw counts are capped at write time as well, so stored rows never
	// exceed the configured ceilings.
	saved, err := ls.logsRepo.Upsert(ctx, &entity.DailyLog{
		UserID:         userID,
		GroupID:        group.ID,
		DayNumber:      dayNumber,
		TaraweehRakaat: minInt(req.TaraweehRakaat, settings.TaraweehCap),
		TahajjudRakaat: minInt(req.TahajjudRakaat, settings.TahajjudCap),
		QuranPages:     minInt(req.QuranPages, settings.QuranPagesCap),
		Notes:          req.Notes,
	})
	if err != nil {
		return nil, errors.New("daily logs repository error: " + err.Error())
	}

	action := entity.ActionLogCreate
	var oldValue any
	if previous != nil {
		action = entity.ActionLogUpdate
		oldValue = logCounts(previous)
	}
	recordAudit(ctx, ls.auditRepo, userID, group.ID, action, "DailyLog", saved.ID.String(), oldValue, logCounts(saved), meta)
	return saved, nil
}

// AdminOverrideLog writes any member's log for any day. The day window is
// bypassed on purpose and caps are not applied: submitted values are
// stored as-is.
func (ls *LogsService) AdminOverrideLog(ctx context.Context, slug string, adminID uuid.UUID, req *AdminOverrideLogRequest, meta RequestMeta) (*entity.DailyLog, error) {
	if err := validate.Struct(*req); err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			joined := errors.New("validation error: ")
			for _, fieldErr := range validationError {
				joined = errors.Join(joined, fieldErr)
			}
			return nil, joined
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	group, membership, err := ls.findMembership(ctx, slug, adminID)
	if err != nil {
		return nil, err
	}
	if membership.Role != entity.RoleAdmin {
		return nil, errorvalues.ErrNotAdmin
	}
	if _, err := ls.membershipsRepo.Find(ctx, req.UserID, group.ID); err != nil {
		if errors.Is(err, errorvalues.ErrNotMember) {
			return nil, errorvalues.ErrMemberNotFound
		}
		return nil, errors.New("memberships repository error: " + err.Error())
	}

	previous, err := ls.logsRepo.Get(ctx, req.UserID, group.ID, req.DayNumber)
	if err != nil && !errors.Is(err, errorvalues.ErrLogNotFound) {
		return nil, errors.New("daily logs repository error: " + err.Error())
	}

	saved, err := ls.logsRepo.Upsert(ctx, &entity.DailyLog{
		UserID:         req.UserID,
		GroupID:        group.ID,
		DayNumber:      req.DayNumber,
		TaraweehRakaat: req.TaraweehRakaat,
		TahajjudRakaat: req.TahajjudRakaat,
		QuranPages:     req.QuranPages,
		Notes:          req.Notes,
	})
	if err != nil {
		return nil, errors.New("daily logs repository error: " + err.Error())
	}

	var oldValue any
	if previous != nil {
		oldValue = logCounts(previous)
	}
	newValue := logCounts(saved)
	newValue["reason"] = req.Reason
	recordAudit(ctx, ls.auditRepo, adminID, group.ID, entity.ActionLogAdminOverride, "DailyLog", saved.ID.String(), oldValue, newValue, meta)
	return saved, nil
}

func (ls *LogsService) ListLogs(ctx context.Context, slug string, userID uuid.UUID, dayNumber int) ([]entity.DailyLog, error) {
	group, _, err := ls.findMembership(ctx, slug, userID)
	if err != nil {
		return nil, err
	}
	var logs []entity.DailyLog
	if dayNumber > 0 {
		logs, err = ls.logsRepo.ListByGroupAndDay(ctx, group.ID, dayNumber)
	} else {
		logs, err = ls.logsRepo.ListByGroup(ctx, group.ID)
	}
	if err != nil {
		return nil, errors.New("daily logs repository error: " + err.Error())
	}
	return logs, nil
}

func (ls *LogsService) memberGroupWithSettings(ctx context.Context, slug string, userID uuid.UUID) (*entity.Group, *entity.GroupSettings, error) {
	group, _, err := ls.findMembership(ctx, slug, userID)
	if err != nil {
		return nil, nil, err
	}
	settings, err := ls.groupsRepo.GetSettings(ctx, group.ID)
	if err != nil {
		return nil, nil, errors.New("groups repository error: " + err.Error())
	}
	return group, settings, nil
}

func (ls *LogsService) findMembership(ctx context.Context, slug string, userID uuid.UUID) (*entity.Group, *entity.Membership, error) {
	group, err := ls.groupsRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGroupNotFound) {
			return nil, nil, errorvalues.ErrGroupNotFound
		}
		return nil, nil, errors.New("groups repository error: " + err.Error())
	}
	membership, err := ls.membershipsRepo.Find(ctx, userID, group.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotMember) {
			return nil, nil, errorvalues.ErrNotMember
		}
		return nil, nil, errors.New("memberships repository error: " + err.Error())
	}
	return group, membership, nil
}

func logCounts(dailyLog *entity.DailyLog) map[string]any {
	return map[string]any{
		"taraweeh_rakaat": dailyLog.TaraweehRakaat,
		"tahajjud_rakaat": dailyLog.TahajjudRakaat,
		"quran_pages":     dailyLog.QuranPages,
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

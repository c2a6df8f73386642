package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/karam/musabaqa/internal/error_values"
	"github.com/karam/musabaqa/internal/ramadan"
	"github.com/karam/musabaqa/internal/repository"
	"github.com/karam/musabaqa/pkg/entity"
)

const (
	defaultTimezone    = "Africa/Cairo"
	defaultTaraweehCap = 11
	defaultTahajjudCap = 11
	defaultQuranCap    = 20
)

type GroupsService struct {
	groupsRepo      repository.GroupsRepositoryI
	membershipsRepo repository.MembershipsRepositoryI
	lockedDaysRepo  repository.LockedDaysRepositoryI
	auditRepo       repository.AuditRepositoryI
}

func NewGroupsService(
	groupsRepo repository.GroupsRepositoryI,
	membershipsRepo repository.MembershipsRepositoryI,
	lockedDaysRepo repository.LockedDaysRepositoryI,
	auditRepo repository.AuditRepositoryI,
) *GroupsService {
	if groupsRepo == nil || membershipsRepo == nil || lockedDaysRepo == nil || auditRepo == nil {
		log.Fatal("on groups service provided nil repos")
	}
	return &GroupsService{
		groupsRepo:      groupsRepo,
		membershipsRepo: membershipsRepo,
		lockedDaysRepo:  lockedDaysRepo,
		auditRepo:       auditRepo,
	}
}

func (gs *GroupsService) CreateGroup(ctx context.Context, userID uuid.UUID, req *CreateGroupRequest) (*GroupView, error) {
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

	settings := entity.GroupSettings{
		RamadanStartDate:     req.RamadanStartDate,
		NumDays:              req.NumDays,
		Timezone:             defaultTimezone,
		ResetRule:            entity.ResetMidnight,
		TaraweehCap:          defaultTaraweehCap,
		TahajjudCap:          defaultTahajjudCap,
		QuranPagesCap:        defaultQuranCap,
		PointsWeightTaraweeh: 1,
		PointsWeightTahajjud: 1,
		PointsWeightQuran:    1,
	}
	if req.Timezone != "" {
		settings.Timezone = req.Timezone
	}
	if req.TaraweehCap != nil {
		settings.TaraweehCap = *req.TaraweehCap
	}
	if req.TahajjudCap != nil {
		settings.TahajjudCap = *req.TahajjudCap
	}

	group := entity.Group{
		Name:       req.Name,
		Slug:       req.Slug,
		InviteCode: newInviteCode(),
	}
	groupID, err := gs.groupsRepo.Create(ctx, &group, &settings, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSlugTaken) {
			return nil, errorvalues.ErrSlugTaken
		}
		return nil, errors.New("groups repository error: " + err.Error())
	}
	group.ID = groupID
	settings.GroupID = groupID

	return &GroupView{
		Group:      group,
		Settings:   settings,
		MyRole:     entity.RoleAdmin,
		LockedDays: []int{},
	}, nil
}

func (gs *GroupsService) GetGroup(ctx context.Context, slug string, userID uuid.UUID) (*GroupView, error) {
	group, membership, err := gs.requireMember(ctx, slug, userID)
	if err != nil {
		return nil, err
	}
	settings, err := gs.groupsRepo.GetSettings(ctx, group.ID)
	if err != nil {
		return nil, errors.New("groups repository error: " + err.Error())
	}
	lockedDays, err := gs.lockedDaysRepo.ListByGroup(ctx, group.ID)
	if err != nil {
		return nil, errors.New("locked days repository error: " + err.Error())
	}
	return &GroupView{
		Group:      *group,
		Settings:   *settings,
		MyRole:     membership.Role,
		LockedDays: lockedDays,
	}, nil
}

func (gs *GroupsService) UpdateSettings(ctx context.Context, slug string, userID uuid.UUID, req *UpdateSettingsRequest, meta RequestMeta) error {
	if err := validate.Struct(*req); err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			joined := errors.New("validation error: ")
			for _, fieldErr := range validationError {
				joined = errors.Join(joined, fieldErr)
			}
			return joined
		}
		return errors.New("validation unexpected error: " + err.Error())
	}
	group, _, err := gs.requireAdmin(ctx, slug, userID)
	if err != nil {
		return err
	}
	settings, err := gs.groupsRepo.GetSettings(ctx, group.ID)
	if err != nil {
		return errors.New("groups repository error: " + err.Error())
	}
	oldSettings := *settings

	if req.Name != nil {
		if err := gs.groupsRepo.UpdateName(ctx, group.ID, *req.Name); err != nil {
			return errors.New("groups repository error: " + err.Error())
		}
	}
	applySettingsPatch(settings, req)

	if err := gs.groupsRepo.UpdateSettings(ctx, settings); err != nil {
		return errors.New("groups repository error: " + err.Error())
	}

	recordAudit(ctx, gs.auditRepo, userID, group.ID, entity.ActionSettingsUpdate,
		"GroupSettings", group.ID.String(), oldSettings, settings, meta)
	return nil
}

func applySettingsPatch(settings *entity.GroupSettings, req *UpdateSettingsRequest) {
	if req.RamadanStartDate != nil {
		settings.RamadanStartDate = *req.RamadanStartDate
	}
	if req.NumDays != nil {
		settings.NumDays = *req.NumDays
	}
	if req.Timezone != nil {
		settings.Timezone = *req.Timezone
	}
	if req.ResetRule != nil {
		settings.ResetRule = *req.ResetRule
	}
	if req.EditCutoffHour != nil {
		settings.EditCutoffHour = *req.EditCutoffHour
	}
	if req.TaraweehCap != nil {
		settings.TaraweehCap = *req.TaraweehCap
	}
	if req.TahajjudCap != nil {
		settings.TahajjudCap = *req.TahajjudCap
	}
	if req.QuranPagesCap != nil {
		settings.QuranPagesCap = *req.QuranPagesCap
	}
}

func (gs *GroupsService) Join(ctx context.Context, userID uuid.UUID, inviteCode string) (*JoinResult, error) {
	group, err := gs.groupsRepo.GetByInviteCode(ctx, inviteCode)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInviteCodeInvalid) {
			return nil, errorvalues.ErrInviteCodeInvalid
		}
		return nil, errors.New("groups repository error: " + err.Error())
	}
	_, err = gs.membershipsRepo.Find(ctx, userID, group.ID)
	if err == nil {
		return &JoinResult{Slug: group.Slug, AlreadyMember: true}, nil
	}
	if !errors.Is(err, errorvalues.ErrNotMember) {
		return nil, errors.New("memberships repository error: " + err.Error())
	}
	err = gs.membershipsRepo.Create(ctx, userID, group.ID, entity.RoleMember)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAlreadyMember) {
			return &JoinResult{Slug: group.Slug, AlreadyMember: true}, nil
		}
		return nil, errors.New("memberships repository error: " + err.Error())
	}
	return &JoinResult{Slug: group.Slug, AlreadyMember: false}, nil
}

func (gs *GroupsService) GetInviteCode(ctx context.Context, slug string, userID uuid.UUID) (string, error) {
	group, _, err := gs.requireMember(ctx, slug, userID)
	if err != nil {
		return "", err
	}
	return group.InviteCode, nil
}

func (gs *GroupsService) RegenerateInviteCode(ctx context.Context, slug string, userID uuid.UUID, meta RequestMeta) (string, error) {
	group, _, err := gs.requireAdmin(ctx, slug, userID)
	if err != nil {
		return "", err
	}
	newCode := newInviteCode()
	if err := gs.groupsRepo.UpdateInviteCode(ctx, group.ID, newCode); err != nil {
		return "", errors.New("groups repository error: " + err.Error())
	}
	recordAudit(ctx, gs.auditRepo, userID, group.ID, entity.ActionInviteRegenerate,
		"Group", group.ID.String(), nil, nil, meta)
	return newCode, nil
}

func (gs *GroupsService) ListMembers(ctx context.Context, slug string, userID uuid.UUID) ([]entity.Member, error) {
	group, _, err := gs.requireMember(ctx, slug, userID)
	if err != nil {
		return nil, err
	}
	members, err := gs.membershipsRepo.ListByGroup(ctx, group.ID)
	if err != nil {
		return nil, errors.New("memberships repository error: " + err.Error())
	}
	return members, nil
}

func (gs *GroupsService) KickMember(ctx context.Context, slug string, adminID, targetID uuid.UUID, meta RequestMeta) error {
	if adminID == targetID {
		return errorvalues.ErrCannotKickSelf
	}
	group, _, err := gs.requireAdmin(ctx, slug, adminID)
	if err != nil {
		return err
	}
	target, err := gs.membershipsRepo.Find(ctx, targetID, group.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotMember) {
			return errorvalues.ErrMemberNotFound
		}
		return errors.New("memberships repository error: " + err.Error())
	}
	if err := gs.membershipsRepo.Delete(ctx, targetID, group.ID); err != nil {
		if errors.Is(err, errorvalues.ErrMemberNotFound) {
			return errorvalues.ErrMemberNotFound
		}
		return errors.New("memberships repository error: " + err.Error())
	}
	recordAudit(ctx, gs.auditRepo, adminID, group.ID, entity.ActionMemberKick,
		"GroupMembership", target.ID.String(), map[string]any{"user_id": targetID, "role": target.Role}, nil, meta)
	return nil
}

func (gs *GroupsService) ChangeRole(ctx context.Context, slug string, adminID, targetID uuid.UUID, role entity.Role, meta RequestMeta) error {
	if role != entity.RoleAdmin && role != entity.RoleMember {
		return errors.New("invalid role: " + string(role))
	}
	group, _, err := gs.requireAdmin(ctx, slug, adminID)
	if err != nil {
		return err
	}
	err = gs.membershipsRepo.UpdateRole(ctx, targetID, group.ID, role)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMemberNotFound) {
			return errorvalues.ErrMemberNotFound
		}
		return errors.New("memberships repository error: " + err.Error())
	}
	recordAudit(ctx, gs.auditRepo, adminID, group.ID, entity.ActionMemberRoleChange,
		"GroupMembership", targetID.String(), nil, map[string]any{"role": role}, meta)
	return nil
}

func (gs *GroupsService) LockDay(ctx context.Context, slug string, adminID uuid.UUID, dayNumber int, meta RequestMeta) error {
	group, err := gs.requireValidDay(ctx, slug, adminID, dayNumber)
	if err != nil {
		return err
	}
	if err := gs.lockedDaysRepo.Lock(ctx, group.ID, dayNumber, adminID); err != nil {
		return errors.New("locked days repository error: " + err.Error())
	}
	recordAudit(ctx, gs.auditRepo, adminID, group.ID, entity.ActionDayLock,
		"LockedDay", "", nil, map[string]any{"day_number": dayNumber}, meta)
	return nil
}

func (gs *GroupsService) UnlockDay(ctx context.Context, slug string, adminID uuid.UUID, dayNumber int, meta RequestMeta) error {
	group, err := gs.requireValidDay(ctx, slug, adminID, dayNumber)
	if err != nil {
		return err
	}
	if err := gs.lockedDaysRepo.Unlock(ctx, group.ID, dayNumber); err != nil {
		return errors.New("locked days repository error: " + err.Error())
	}
	recordAudit(ctx, gs.auditRepo, adminID, group.ID, entity.ActionDayUnlock,
		"LockedDay", "", nil, map[string]any{"day_number": dayNumber}, meta)
	return nil
}

func (gs *GroupsService) Days(ctx context.Context, slug string, userID uuid.UUID) ([]entity.DayInfo, error) {
	group, _, err := gs.requireMember(ctx, slug, userID)
	if err != nil {
		return nil, err
	}
	settings, err := gs.groupsRepo.GetSettings(ctx, group.ID)
	if err != nil {
		return nil, errors.New("groups repository error: " + err.Error())
	}
	lockedDays, err := gs.lockedDaysRepo.ListByGroup(ctx, group.ID)
	if err != nil {
		return nil, errors.New("locked days repository error: " + err.Error())
	}
	return ramadan.AllDays(settings, lockedDays, time.Now()), nil
}

func (gs *GroupsService) requireMember(ctx context.Context, slug string, userID uuid.UUID) (*entity.Group, *entity.Membership, error) {
	group, err := gs.groupsRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGroupNotFound) {
			return nil, nil, errorvalues.ErrGroupNotFound
		}
		return nil, nil, errors.New("groups repository error: " + err.Error())
	}
	membership, err := gs.membershipsRepo.Find(ctx, userID, group.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotMember) {
			return nil, nil, errorvalues.ErrNotMember
		}
		return nil, nil, errors.New("memberships repository error: " + err.Error())
	}
	return group, membership, nil
}

func (gs *GroupsService) requireAdmin(ctx context.Context, slug string, userID uuid.UUID) (*entity.Group, *entity.Membership, error) {
	group, membership, err := gs.requireMember(ctx, slug, userID)
	if err != nil {
		return nil, nil, err
	}
	if membership.Role != entity.RoleAdmin {
		return nil, nil, errorvalues.ErrNotAdmin
	}
	return group, membership, nil
}

func (gs *GroupsService) requireValidDay(ctx context.Context, slug string, adminID uuid.UUID, dayNumber int) (*entity.Group, error) {
	group, _, err := gs.requireAdmin(ctx, slug, adminID)
	if err != nil {
		return nil, err
	}
	settings, err := gs.groupsRepo.GetSettings(ctx, group.ID)
	if err != nil {
		return nil, errors.New("groups repository error: " + err.Error())
	}
	if dayNumber < 1 || dayNumber > settings.NumDays {
		return nil, errorvalues.ErrOutsideRamadan
	}
	return group, nil
}

func newInviteCode() string {
	buf := make([]byte, 6)
	rand.Read(buf)
	return strings.ToUpper(hex.EncodeToString(buf))
}

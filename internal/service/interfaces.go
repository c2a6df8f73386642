package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/karam/musabaqa/pkg/entity"
)

type RegisterRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8,max=72"`
	Name     string `validate:"required,min=2,max=80"`
}

type CreateGroupRequest struct {
	Name             string    `json:"name" validate:"required,min=2,max=100"`
	Slug             string    `json:"slug" validate:"required,min=3,max=50,group_slug"`
	RamadanStartDate time.Time `json:"ramadan_start_date" validate:"required"`
	NumDays          int       `json:"num_days" validate:"required,min=29,max=30"`
	Timezone         string    `json:"timezone" validate:"omitempty,iana_tz"`
	TaraweehCap      *int      `json:"taraweeh_cap" validate:"omitempty,min=0,max=20"`
	TahajjudCap      *int      `json:"tahajjud_cap" validate:"omitempty,min=0,max=20"`
}

type UpdateSettingsRequest struct {
	Name             *string           `json:"name" validate:"omitempty,min=2,max=100"`
	RamadanStartDate *time.Time        `json:"ramadan_start_date"`
	NumDays          *int              `json:"num_days" validate:"omitempty,min=29,max=30"`
	Timezone         *string           `json:"timezone" validate:"omitempty,iana_tz"`
	ResetRule        *entity.ResetRule `json:"reset_rule" validate:"omitempty,oneof=MIDNIGHT MAGHRIB"`
	EditCutoffHour   *int              `json:"edit_cutoff_hour" validate:"omitempty,min=0,max=23"`
	TaraweehCap      *int              `json:"taraweeh_cap" validate:"omitempty,min=0,max=20"`
	TahajjudCap      *int              `json:"tahajjud_cap" validate:"omitempty,min=0,max=20"`
	QuranPagesCap    *int              `json:"quran_pages_cap" validate:"omitempty,min=0,max=20"`
}

type UpsertLogRequest struct {
	TaraweehRakaat int    `json:"taraweeh_rakaat" validate:"min=0,max=20"`
	TahajjudRakaat int    `json:"tahajjud_rakaat" validate:"min=0,max=20"`
	QuranPages     int    `json:"quran_pages" validate:"min=0,max=20"`
	Notes          string `json:"notes" validate:"max=500"`
}

type AdminOverrideLogRequest struct {
	UserID         uuid.UUID `json:"user_id" validate:"required"`
	DayNumber      int       `json:"day_number" validate:"required,min=1,max=30"`
	TaraweehRakaat int       `json:"taraweeh_rakaat" validate:"min=0,max=20"`
	TahajjudRakaat int       `json:"tahajjud_rakaat" validate:"min=0,max=20"`
	QuranPages     int       `json:"quran_pages" validate:"min=0,max=20"`
	Notes          string    `json:"notes" validate:"max=500"`
	Reason         string    `json:"reason" validate:"required,max=500"`
}

// RequestMeta carries what audit records need from the HTTP layer.
type RequestMeta struct {
	IP        string
	UserAgent string
}

// GroupView is a group joined with its settings, the caller's role and the
// locked day numbers, the shape the dashboard consumes.
type GroupView struct {
	Group      entity.Group         `json:"group"`
	Settings   entity.GroupSettings `json:"settings"`
	MyRole     entity.Role          `json:"my_role"`
	LockedDays []int                `json:"locked_days"`
}

type JoinResult struct {
	Slug          string `json:"slug"`
	AlreadyMember bool   `json:"already_member"`
}

type UserServiceI interface {
	// Validates credentials and creates a new user row. Returns the user with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, gives back the user's data with ID
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type GroupsServiceI interface {
	// Creates a group with default settings, the caller becoming its admin
	CreateGroup(ctx context.Context, userID uuid.UUID, req *CreateGroupRequest) (*GroupView, error)
	// Member-only view of the group with settings and locked days
	GetGroup(ctx context.Context, slug string, userID uuid.UUID) (*GroupView, error)
	// Admin-only partial settings update
	UpdateSettings(ctx context.Context, slug string, userID uuid.UUID, req *UpdateSettingsRequest, meta RequestMeta) error
	// Joins by invite code; joining twice reports AlreadyMember instead of failing
	Join(ctx context.Context, userID uuid.UUID, inviteCode string) (*JoinResult, error)
	GetInviteCode(ctx context.Context, slug string, userID uuid.UUID) (string, error)
	RegenerateInviteCode(ctx context.Context, slug string, userID uuid.UUID, meta RequestMeta) (string, error)
	ListMembers(ctx context.Context, slug string, userID uuid.UUID) ([]entity.Member, error)
	KickMember(ctx context.Context, slug string, adminID, targetID uuid.UUID, meta RequestMeta) error
	ChangeRole(ctx context.Context, slug string, adminID, targetID uuid.UUID, role entity.Role, meta RequestMeta) error
	// Admin-only day locking; locking gates member edits, not reads
	LockDay(ctx context.Context, slug string, adminID uuid.UUID, dayNumber int, meta RequestMeta) error
	UnlockDay(ctx context.Context, slug string, adminID uuid.UUID, dayNumber int, meta RequestMeta) error
	// Full calendar as the member sees it right now
	Days(ctx context.Context, slug string, userID uuid.UUID) ([]entity.DayInfo, error)
}

type LogsServiceI interface {
	// Upserts the caller's log for the live day; rejects outside the
	// competition window and on locked days
	UpsertMyLog(ctx context.Context, slug string, userID uuid.UUID, req *UpsertLogRequest, meta RequestMeta) (*entity.DailyLog, error)
	// Admin write to any member's log on any day, bypassing the day window
	AdminOverrideLog(ctx context.Context, slug string, adminID uuid.UUID, req *AdminOverrideLogRequest, meta RequestMeta) (*entity.DailyLog, error)
	// Group logs, optionally filtered to one day (dayNumber <= 0 means all)
	ListLogs(ctx context.Context, slug string, userID uuid.UUID, dayNumber int) ([]entity.DailyLog, error)
}

type LeaderboardServiceI interface {
	Overall(ctx context.Context, slug string, userID uuid.UUID) ([]entity.LeaderboardEntry, error)
	Daily(ctx context.Context, slug string, userID uuid.UUID, dayNumber int) ([]entity.LeaderboardEntry, error)
}

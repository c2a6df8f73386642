package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/karam/musabaqa/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by email. Can be used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
}

type GroupsRepositoryI interface {
	// Creates group, its settings row and the creator's admin membership in one transaction
	Create(ctx context.Context, group *entity.Group, settings *entity.GroupSettings, creatorID uuid.UUID) (uuid.UUID, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Group, error)
	GetByInviteCode(ctx context.Context, inviteCode string) (*entity.Group, error)
	GetSettings(ctx context.Context, groupID uuid.UUID) (*entity.GroupSettings, error)
	UpdateName(ctx context.Context, groupID uuid.UUID, name string) error
	// Applies the full settings row; callers merge partial updates first
	UpdateSettings(ctx context.Context, settings *entity.GroupSettings) error
	UpdateInviteCode(ctx context.Context, groupID uuid.UUID, inviteCode string) error
}

type MembershipsRepositoryI interface {
	Create(ctx context.Context, userID, groupID uuid.UUID, role entity.Role) error
	Find(ctx context.Context, userID, groupID uuid.UUID) (*entity.Membership, error)
	// Lists members with joined user display fields, joined_at ascending
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]entity.Member, error)
	Delete(ctx context.Context, userID, groupID uuid.UUID) error
	UpdateRole(ctx context.Context, userID, groupID uuid.UUID, role entity.Role) error
}

type DailyLogsRepositoryI interface {
	// Inserts or updates the single row per (user, group, day number)
	Upsert(ctx context.Context, log *entity.DailyLog) (*entity.DailyLog, error)
	Get(ctx context.Context, userID, groupID uuid.UUID, dayNumber int) (*entity.DailyLog, error)
	// Lists group logs with joined user display fields, day number then updated_at ascending
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]entity.DailyLog, error)
	ListByGroupAndDay(ctx context.Context, groupID uuid.UUID, dayNumber int) ([]entity.DailyLog, error)
}

type LockedDaysRepositoryI interface {
	Lock(ctx context.Context, groupID uuid.UUID, dayNumber int, lockedBy uuid.UUID) error
	Unlock(ctx context.Context, groupID uuid.UUID, dayNumber int) error
	// Day numbers currently locked for the group, ascending
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]int, error)
}

type AuditRepositoryI interface {
	Insert(ctx context.Context, record *entity.AuditRecord) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

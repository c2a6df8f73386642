package entity

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

type ResetRule string

const (
	ResetMidnight ResetRule = "MIDNIGHT"
	ResetMaghrib  ResetRule = "MAGHRIB"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Group struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	InviteCode string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// GroupSettings drives all calendar and scoring computations for a group.
// ResetRule and EditCutoffHour are stored but not enforced: only MIDNIGHT
// rollover is implemented.
type GroupSettings struct {
	GroupID              uuid.UUID `json:"group_id"`
	RamadanStartDate     time.Time `json:"ramadan_start_date"`
	NumDays              int       `json:"num_days"`
	Timezone             string    `json:"timezone"`
	ResetRule            ResetRule `json:"reset_rule"`
	EditCutoffHour       int       `json:"edit_cutoff_hour"`
	TaraweehCap          int       `json:"taraweeh_cap"`
	TahajjudCap          int       `json:"tahajjud_cap"`
	QuranPagesCap        int       `json:"quran_pages_cap"`
	PointsWeightTaraweeh float64   `json:"points_weight_taraweeh"`
	PointsWeightTahajjud float64   `json:"points_weight_tahajjud"`
	PointsWeightQuran    float64   `json:"points_weight_quran"`
}

type Membership struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	GroupID  uuid.UUID `json:"group_id"`
	Role     Role      `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// Member is a membership joined with the user's display fields.
type Member struct {
	Membership
	UserName  string `json:"user_name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// DailyLog holds one user's raw counts for one day of the competition.
// At most one row exists per (user, group, day number).
type DailyLog struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	GroupID        uuid.UUID `json:"group_id"`
	DayNumber      int       `json:"day_number"`
	TaraweehRakaat int       `json:"taraweeh_rakaat"`
	TahajjudRakaat int       `json:"tahajjud_rakaat"`
	QuranPages     int       `json:"quran_pages"`
	Notes          string    `json:"notes,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
	UserName       string    `json:"user_name,omitempty"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
}

type DayInfo struct {
	DayNumber int    `json:"day_number"`
	Date      string `json:"date"`
	IsToday   bool   `json:"is_today"`
	IsLocked  bool   `json:"is_locked"`
	CanEdit   bool   `json:"can_edit"`
}

type LeaderboardEntry struct {
	Rank            int        `json:"rank"`
	UserID          uuid.UUID  `json:"user_id"`
	UserName        string     `json:"user_name"`
	AvatarURL       string     `json:"avatar_url,omitempty"`
	TaraweehTotal   int        `json:"taraweeh_total"`
	TahajjudTotal   int        `json:"tahajjud_total"`
	QuranPagesTotal int        `json:"quran_pages_total"`
	TotalPoints     float64    `json:"total_points"`
	DaysLogged      int        `json:"days_logged"`
	LastUpdated     *time.Time `json:"last_updated,omitempty"`
}

type ActionType string

const (
	ActionLogCreate        ActionType = "LOG_CREATE"
	ActionLogUpdate        ActionType = "LOG_UPDATE"
	ActionLogAdminOverride ActionType = "LOG_ADMIN_OVERRIDE"
	ActionDayLock          ActionType = "DAY_LOCK"
	ActionDayUnlock        ActionType = "DAY_UNLOCK"
	ActionMemberKick       ActionType = "MEMBER_KICK"
	ActionMemberRoleChange ActionType = "MEMBER_ROLE_CHANGE"
	ActionSettingsUpdate   ActionType = "SETTINGS_UPDATE"
	ActionInviteRegenerate ActionType = "INVITE_REGENERATE"
)

type AuditRecord struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	GroupID    uuid.UUID  `json:"group_id"`
	ActionType ActionType `json:"action_type"`
	Entity     string     `json:"entity"`
	EntityID   string     `json:"entity_id,omitempty"`
	OldValue   []byte     `json:"old_value,omitempty"`
	NewValue   []byte     `json:"new_value,omitempty"`
	IP         string     `json:"ip,omitempty"`
	UserAgent  string     `json:"user_agent,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

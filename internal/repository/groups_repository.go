package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/karam/musabaqa/internal/error_values"
	"github.com/karam/musabaqa/pkg/cleanup"
	"github.com/karam/musabaqa/pkg/entity"
)

type GroupsRepository struct {
	conn PgConnection
}

func NewGroupsRepo(cfg DBConfig) *GroupsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for groupsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for groupsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &GroupsRepository{
		conn: pool,
	}
}

func NewGroupsRepoWithConn(conn PgConnection) *GroupsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for groupsRepo: " + err.Error())
	}
	return &GroupsRepository{
		conn: conn,
	}
}

func (gr *GroupsRepository) Create(ctx context.Context, group *entity.Group, settings *entity.GroupSettings, creatorID uuid.UUID) (uuid.UUID, error) {
	tx, err := gr.conn.Begin(ctx)
	if err != nil {
		return uuid.UUID{}, errors.New("starting group creation tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	var groupID uuid.UUID
	row := tx.QueryRow(
		ctx,
		`INSERT INTO groups (name, slug, invite_code) VALUES ($1, $2, $3) RETURNING id;`,
		group.Name,
		group.Slug,
		group.InviteCode,
	)
	if err := row.Scan(&groupID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrSlugTaken
			}
		}
		return uuid.UUID{}, errors.New("creating group error: " + err.Error())
	}

	_, err = tx.Exec(
		ctx,
		`INSERT INTO group_settings
			(group_id, ramadan_start_date, num_days, timezone, reset_rule, edit_cutoff_hour,
			taraweeh_cap, tahajjud_cap, quran_pages_cap,
			points_weight_taraweeh, points_weight_tahajjud, points_weight_quran)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`,
		groupID,
		settings.RamadanStartDate,
		settings.NumDays,
		settings.Timezone,
		settings.ResetRule,
		settings.EditCutoffHour,
		settings.TaraweehCap,
		settings.TahajjudCap,
		settings.QuranPagesCap,
		settings.PointsWeightTaraweeh,
		settings.PointsWeightTahajjud,
		settings.PointsWeightQuran,
	)
	if err != nil {
		return uuid.UUID{}, errors.New("creating group settings error: " + err.Error())
	}

	_, err = tx.Exec(
		ctx,
		`INSERT INTO group_memberships (user_id, group_id, role) VALUES ($1, $2, $3);`,
		creatorID,
		groupID,
		entity.RoleAdmin,
	)
	if err != nil {
		return uuid.UUID{}, errors.New("creating admin membership error: " + err.Error())
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.UUID{}, errors.New("committing group creation error: " + err.Error())
	}
	return groupID, nil
}

func (gr *GroupsRepository) GetBySlug(ctx context.Context, slug string) (*entity.Group, error) {
	var group entity.Group
	row := gr.conn.QueryRow(
		ctx,
		`SELECT id, name, slug, invite_code, created_at FROM groups WHERE slug = $1;`,
		slug,
	)
	if err := row.Scan(&group.ID, &group.Name, &group.Slug, &group.InviteCode, &group.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGroupNotFound
		}
		return nil, errors.New("searching group by slug error: " + err.Error())
	}
	return &group, nil
}

func (gr *GroupsRepository) GetByInviteCode(ctx context.Context, inviteCode string) (*entity.Group, error) {
	var group entity.Group
	row := gr.conn.QueryRow(
		ctx,
		`SELECT id, name, slug, invite_code, created_at FROM groups WHERE invite_code = $1;`,
		inviteCode,
	)
	if err := row.Scan(&group.ID, &group.Name, &group.Slug, &group.InviteCode, &group.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrInviteCodeInvalid
		}
		return nil, errors.New("searching group by invite code error: " + err.Error())
	}
	return &group, nil
}

func (gr *GroupsRepository) GetSettings(ctx context.Context, groupID uuid.UUID) (*entity.GroupSettings, error) {
	var settings entity.GroupSettings
	row := gr.conn.QueryRow(
		ctx,
		`SELECT group_id, ramadan_start_date, num_days, timezone, reset_rule, edit_cutoff_hour,
			taraweeh_cap, tahajjud_cap, quran_pages_cap,
			points_weight_taraweeh, points_weight_tahajjud, points_weight_quran
		FROM group_settings WHERE group_id = $1;`,
		groupID,
	)
	err := row.Scan(
		&settings.GroupID,
		&settings.RamadanStartDate,
		&settings.NumDays,
		&settings.Timezone,
		&settings.ResetRule,
		&settings.EditCutoffHour,
		&settings.TaraweehCap,
		&settings.TahajjudCap,
		&settings.QuranPagesCap,
		&settings.PointsWeightTaraweeh,
		&settings.PointsWeightTahajjud,
		&settings.PointsWeightQuran,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGroupNotFound
		}
		return nil, errors.New("getting group settings error: " + err.Error())
	}
	return &settings, nil
}

func (gr *GroupsRepository) UpdateName(ctx context.Context, groupID uuid.UUID, name string) error {
	ct, err := gr.conn.Exec(ctx, `UPDATE groups SET name = $1 WHERE id = $2;`, name, groupID)
	if err != nil {
		return errors.New("updating group name error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGroupNotFound
	}
	return nil
}

func (gr *GroupsRepository) UpdateSettings(ctx context.Context, settings *entity.GroupSettings) error {
	ct, err := gr.conn.Exec(
		ctx,
		`UPDATE group_settings SET
			ramadan_start_date = $1, num_days = $2, timezone = $3, reset_rule = $4,
			edit_cutoff_hour = $5, taraweeh_cap = $6, tahajjud_cap = $7, quran_pages_cap = $8,
			points_weight_taraweeh = $9, points_weight_tahajjud = $10, points_weight_quran = $11
		WHERE group_id = $12;`,
		settings.RamadanStartDate,
		settings.NumDays,
		settings.Timezone,
		settings.ResetRule,
		settings.EditCutoffHour,
		settings.TaraweehCap,
		settings.TahajjudCap,
		settings.QuranPagesCap,
		settings.PointsWeightTaraweeh,
		settings.PointsWeightTahajjud,
		settings.PointsWeightQuran,
		settings.GroupID,
	)
	if err != nil {
		return errors.New("updating group settings error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGroupNotFound
	}
	return nil
}

func (gr *GroupsRepository) UpdateInviteCode(ctx context.Context, groupID uuid.UUID, inviteCode string) error {
	ct, err := gr.conn.Exec(ctx, `UPDATE groups SET invite_code = $1 WHERE id = $2;`, inviteCode, groupID)
	if err != nil {
		return errors.New("updating invite code error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGroupNotFound
	}
	return nil
}

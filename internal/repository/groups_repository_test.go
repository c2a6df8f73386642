package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/karam/musabaqa/internal/error_values"
	"github.com/karam/musabaqa/internal/repository"
	"github.com/karam/musabaqa/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func testSettings(groupID uuid.UUID) *entity.GroupSettings {
	return &entity.GroupSettings{
		GroupID:              groupID,
		RamadanStartDate:     time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC),
		NumDays:              30,
		Timezone:             "Africa/Cairo",
		ResetRule:            entity.ResetMidnight,
		TaraweehCap:          11,
		TahajjudCap:          11,
		QuranPagesCap:        20,
		PointsWeightTaraweeh: 1,
		PointsWeightTahajjud: 1,
		PointsWeightQuran:    1,
	}
}

func TestCreateGroupTx(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewGroupsRepoWithConn(conn)
	creatorID := uuid.New()
	group := entity.Group{Name: "Masjid An-Nour", Slug: "masjid-an-nour", InviteCode: "A1B2C3D4E5F6"}
	settings := testSettings(uuid.UUID{})
	groupsQuery := regexp.QuoteMeta(`INSERT INTO groups (name, slug, invite_code) VALUES ($1, $2, $3) RETURNING id;`)
	settingsQuery := regexp.QuoteMeta(`INSERT INTO group_settings`)
	membershipQuery := regexp.QuoteMeta(`INSERT INTO group_memberships (user_id, group_id, role) VALUES ($1, $2, $3);`)
	t.Run("creates group, settings and admin membership", func(t *testing.T) {
		groupID := uuid.New()
		conn.ExpectBegin()
		conn.ExpectQuery(groupsQuery).
			WithArgs(group.Name, group.Slug, group.InviteCode).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(groupID))
		conn.ExpectExec(settingsQuery).
			WithArgs(groupID, settings.RamadanStartDate, settings.NumDays, settings.Timezone,
				settings.ResetRule, settings.EditCutoffHour, settings.TaraweehCap, settings.TahajjudCap,
				settings.QuranPagesCap, settings.PointsWeightTaraweeh, settings.PointsWeightTahajjud, settings.PointsWeightQuran).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		conn.ExpectExec(membershipQuery).
			WithArgs(creatorID, groupID, entity.RoleAdmin).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		conn.ExpectCommit()
		conn.ExpectRollback()

		id, err := repo.Create(ctx, &group, settings, creatorID)
		assert.NoError(t, err)
		assert.Equal(t, groupID, id)
	})
	t.Run("slug taken rolls back", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(groupsQuery).
			WithArgs(group.Name, group.Slug, group.InviteCode).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		conn.ExpectRollback()

		_, err := repo.Create(ctx, &group, settings, creatorID)
		assert.ErrorIs(t, err, errorvalues.ErrSlugTaken)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(groupsQuery).
			WithArgs(group.Name, group.Slug, group.InviteCode).
			WillReturnError(errors.New("db error"))
		conn.ExpectRollback()

		_, err := repo.Create(ctx, &group, settings, creatorID)
		assert.Error(t, err)
	})
}

func TestFindGroup(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewGroupsRepoWithConn(conn)
	group := entity.Group{
		ID:         uuid.New(),
		Name:       "Masjid An-Nour",
		Slug:       "masjid-an-nour",
		InviteCode: "A1B2C3D4E5F6",
		CreatedAt:  time.Now(),
	}
	columns := []string{"id", "name", "slug", "invite_code", "created_at"}
	bySlug := regexp.QuoteMeta(`SELECT id, name, slug, invite_code, created_at FROM groups WHERE slug = $1;`)
	byCode := regexp.QuoteMeta(`SELECT id, name, slug, invite_code, created_at FROM groups WHERE invite_code = $1;`)
	t.Run("found by slug", func(t *testing.T) {
		conn.ExpectQuery(bySlug).
			WithArgs(group.Slug).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(group.ID, group.Name, group.Slug, group.InviteCode, group.CreatedAt))
		result, err := repo.GetBySlug(ctx, group.Slug)
		assert.NoError(t, err)
		assert.Equal(t, group, *result)
	})
	t.Run("not found by slug", func(t *testing.T) {
		conn.ExpectQuery(bySlug).
			WithArgs(group.Slug).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetBySlug(ctx, group.Slug)
		assert.ErrorIs(t, err, errorvalues.ErrGroupNotFound)
	})
	t.Run("found by invite code", func(t *testing.T) {
		conn.ExpectQuery(byCode).
			WithArgs(group.InviteCode).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(group.ID, group.Name, group.Slug, group.InviteCode, group.CreatedAt))
		result, err := repo.GetByInviteCode(ctx, group.InviteCode)
		assert.NoError(t, err)
		assert.Equal(t, group, *result)
	})
	t.Run("invalid invite code", func(t *testing.T) {
		conn.ExpectQuery(byCode).
			WithArgs("NOPE").
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByInviteCode(ctx, "NOPE")
		assert.ErrorIs(t, err, errorvalues.ErrInviteCodeInvalid)
	})
}

func TestGroupSettingsQueries(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewGroupsRepoWithConn(conn)
	groupID := uuid.New()
	settings := testSettings(groupID)
	t.Run("get settings", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`FROM group_settings WHERE group_id = $1;`)).
			WithArgs(groupID).
			WillReturnRows(pgxmock.NewRows([]string{
				"group_id", "ramadan_start_date", "num_days", "timezone", "reset_rule", "edit_cutoff_hour",
				"taraweeh_cap", "tahajjud_cap", "quran_pages_cap",
				"points_weight_taraweeh", "points_weight_tahajjud", "points_weight_quran",
			}).AddRow(settings.GroupID, settings.RamadanStartDate, settings.NumDays, settings.Timezone,
				settings.ResetRule, settings.EditCutoffHour, settings.TaraweehCap, settings.TahajjudCap,
				settings.QuranPagesCap, settings.PointsWeightTaraweeh, settings.PointsWeightTahajjud, settings.PointsWeightQuran))
		result, err := repo.GetSettings(ctx, groupID)
		assert.NoError(t, err)
		assert.Equal(t, *settings, *result)
	})
	t.Run("settings missing", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`FROM group_settings WHERE group_id = $1;`)).
			WithArgs(groupID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetSettings(ctx, groupID)
		assert.ErrorIs(t, err, errorvalues.ErrGroupNotFound)
	})
	t.Run("update settings", func(t *testing.T) {
		conn.ExpectExec(regexp.QuoteMeta(`UPDATE group_settings SET`)).
			WithArgs(settings.RamadanStartDate, settings.NumDays, settings.Timezone, settings.ResetRule,
				settings.EditCutoffHour, settings.TaraweehCap, settings.TahajjudCap, settings.QuranPagesCap,
				settings.PointsWeightTaraweeh, settings.PointsWeightTahajjud, settings.PointsWeightQuran, groupID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.UpdateSettings(ctx, settings))
	})
	t.Run("update settings of missing group", func(t *testing.T) {
		conn.ExpectExec(regexp.QuoteMeta(`UPDATE group_settings SET`)).
			WithArgs(settings.RamadanStartDate, settings.NumDays, settings.Timezone, settings.ResetRule,
				settings.EditCutoffHour, settings.TaraweehCap, settings.TahajjudCap, settings.QuranPagesCap,
				settings.PointsWeightTaraweeh, settings.PointsWeightTahajjud, settings.PointsWeightQuran, groupID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.UpdateSettings(ctx, settings), errorvalues.ErrGroupNotFound)
	})
	t.Run("update invite code", func(t *testing.T) {
		conn.ExpectExec(regexp.QuoteMeta(`UPDATE groups SET invite_code = $1 WHERE id = $2;`)).
			WithArgs("FFFFFFFFFFFF", groupID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.UpdateInviteCode(ctx, groupID, "FFFFFFFFFFFF"))
	})
}

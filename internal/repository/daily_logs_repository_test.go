package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/karam/musabaqa/internal/error_values"
	"github.com/karam/musabaqa/internal/repository"
	"github.com/karam/musabaqa/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

var logColumns = []string{"id", "user_id", "group_id", "day_number", "taraweeh_rakaat", "tahajjud_rakaat", "quran_pages", "notes", "updated_at"}

func TestUpsertDailyLog(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewDailyLogsRepoWithConn(conn)
	dailyLog := entity.DailyLog{
		UserID:         uuid.New(),
		GroupID:        uuid.New(),
		DayNumber:      3,
		TaraweehRakaat: 11,
		TahajjudRakaat: 4,
		QuranPages:     18,
		Notes:          "alhamdulillah",
	}
	query := regexp.QuoteMeta(`INSERT INTO daily_logs (user_id, group_id, day_number, taraweeh_rakaat, tahajjud_rakaat, quran_pages, notes)`)
	t.Run("inserted", func(t *testing.T) {
		savedID := uuid.New()
		updatedAt := time.Now()
		conn.ExpectQuery(query).
			WithArgs(dailyLog.UserID, dailyLog.GroupID, dailyLog.DayNumber, dailyLog.TaraweehRakaat, dailyLog.TahajjudRakaat, dailyLog.QuranPages, dailyLog.Notes).
			WillReturnRows(pgxmock.NewRows(logColumns).
				AddRow(savedID, dailyLog.UserID, dailyLog.GroupID, dailyLog.DayNumber, dailyLog.TaraweehRakaat, dailyLog.TahajjudRakaat, dailyLog.QuranPages, dailyLog.Notes, updatedAt))
		saved, err := repo.Upsert(ctx, &dailyLog)
		assert.NoError(t, err)
		assert.Equal(t, savedID, saved.ID)
		assert.Equal(t, dailyLog.DayNumber, saved.DayNumber)
	})
	t.Run("second write for the same day returns the updated row", func(t *testing.T) {
		savedID := uuid.New()
		conn.ExpectQuery(query).
			WithArgs(dailyLog.UserID, dailyLog.GroupID, dailyLog.DayNumber, dailyLog.TaraweehRakaat, dailyLog.TahajjudRakaat, dailyLog.QuranPages, dailyLog.Notes).
			WillReturnRows(pgxmock.NewRows(logColumns).
				AddRow(savedID, dailyLog.UserID, dailyLog.GroupID, dailyLog.DayNumber, dailyLog.TaraweehRakaat, dailyLog.TahajjudRakaat, dailyLog.QuranPages, dailyLog.Notes, time.Now()))
		saved, err := repo.Upsert(ctx, &dailyLog)
		assert.NoError(t, err)
		assert.Equal(t, savedID, saved.ID)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(dailyLog.UserID, dailyLog.GroupID, dailyLog.DayNumber, dailyLog.TaraweehRakaat, dailyLog.TahajjudRakaat, dailyLog.QuranPages, dailyLog.Notes).
			WillReturnError(errors.New("db error"))
		_, err := repo.Upsert(ctx, &dailyLog)
		assert.Error(t, err)
	})
}

func TestGetDailyLog(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewDailyLogsRepoWithConn(conn)
	userID := uuid.New()
	groupID := uuid.New()
	query := regexp.QuoteMeta(`WHERE user_id = $1 AND group_id = $2 AND day_number = $3;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID, groupID, 5).
			WillReturnRows(pgxmock.NewRows(logColumns).
				AddRow(uuid.New(), userID, groupID, 5, 8, 0, 10, "", time.Now()))
		result, err := repo.Get(ctx, userID, groupID, 5)
		assert.NoError(t, err)
		assert.Equal(t, 5, result.DayNumber)
		assert.Equal(t, 8, result.TaraweehRakaat)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID, groupID, 5).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.Get(ctx, userID, groupID, 5)
		assert.ErrorIs(t, err, errorvalues.ErrLogNotFound)
	})
}

func TestListDailyLogs(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewDailyLogsRepoWithConn(conn)
	groupID := uuid.New()
	joinedColumns := append(append([]string{}, logColumns...), "name", "avatar_url")
	t.Run("by group", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`WHERE l.group_id = $1 ORDER BY l.day_number ASC, l.updated_at ASC;`)).
			WithArgs(groupID).
			WillReturnRows(pgxmock.NewRows(joinedColumns).
				AddRow(uuid.New(), uuid.New(), groupID, 1, 11, 0, 20, "", time.Now(), "Alice", "").
				AddRow(uuid.New(), uuid.New(), groupID, 2, 8, 2, 10, "", time.Now(), "Bilal", ""))
		logs, err := repo.ListByGroup(ctx, groupID)
		assert.NoError(t, err)
		assert.Len(t, logs, 2)
		assert.Equal(t, "Alice", logs[0].UserName)
	})
	t.Run("by group and day", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`WHERE l.group_id = $1 AND l.day_number = $2 ORDER BY l.updated_at ASC;`)).
			WithArgs(groupID, 2).
			WillReturnRows(pgxmock.NewRows(joinedColumns).
				AddRow(uuid.New(), uuid.New(), groupID, 2, 8, 2, 10, "", time.Now(), "Bilal", ""))
		logs, err := repo.ListByGroupAndDay(ctx, groupID, 2)
		assert.NoError(t, err)
		assert.Len(t, logs, 1)
		assert.Equal(t, 2, logs[0].DayNumber)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`WHERE l.group_id = $1 ORDER BY`)).
			WithArgs(groupID).
			WillReturnError(errors.New("db error"))
		_, err := repo.ListByGroup(ctx, groupID)
		assert.Error(t, err)
	})
}

package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/karam/musabaqa/internal/error_values"
	"github.com/karam/musabaqa/pkg/cleanup"
	"github.com/karam/musabaqa/pkg/entity"
)

type DailyLogsRepository struct {
	conn PgConnection
}

func NewDailyLogsRepo(cfg DBConfig) *DailyLogsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for dailyLogsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for dailyLogsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &DailyLogsRepository{
		conn: pool,
	}
}

func NewDailyLogsRepoWithConn(conn PgConnection) *DailyLogsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for dailyLogsRepo: " + err.Error())
	}
	return &DailyLogsRepository{
		conn: conn,
	}
}

// Upsert owns the one-row-per-(user, group, day) invariant via the unique
// index on those columns.
func (dr *DailyLogsRepository) Upsert(ctx context.Context, dailyLog *entity.DailyLog) (*entity.DailyLog, error) {
	var saved entity.DailyLog
	row := dr.conn.QueryRow(
		ctx,
		`INSERT INTO daily_logs (user_id, group_id, day_number, taraweeh_rakaat, tahajjud_rakaat, quran_pages, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, group_id, day_number) DO UPDATE SET
			taraweeh_rakaat = EXCLUDED.taraweeh_rakaat,
			tahajjud_rakaat = EXCLUDED.tahajjud_rakaat,
			quran_pages = EXCLUDED.quran_pages,
			notes = EXCLUDED.notes,
			updated_at = now()
		RETURNING id, user_id, group_id, day_number, taraweeh_rakaat, tahajjud_rakaat, quran_pages, COALESCE(notes, ''), updated_at;`,
		dailyLog.UserID,
		dailyLog.GroupID,
		dailyLog.DayNumber,
		dailyLog.TaraweehRakaat,
		dailyLog.TahajjudRakaat,
		dailyLog.QuranPages,
		dailyLog.Notes,
	)
	err := row.Scan(
		&saved.ID,
		&saved.UserID,
		&saved.GroupID,
		&saved.DayNumber,
		&saved.TaraweehRakaat,
		&saved.TahajjudRakaat,
		&saved.QuranPages,
		&saved.Notes,
		&saved.UpdatedAt,
	)
	if err != nil {
		return nil, errors.New("upserting daily log error: " + err.Error())
	}
	return &saved, nil
}

func (dr *DailyLogsRepository) Get(ctx context.Context, userID, groupID uuid.UUID, dayNumber int) (*entity.DailyLog, error) {
	var dailyLog entity.DailyLog
	row := dr.conn.QueryRow(
		ctx,
		`SELECT id, user_id, group_id, day_number, taraweeh_rakaat, tahajjud_rakaat, quran_pages, COALESCE(notes, ''), updated_at
		FROM daily_logs WHERE user_id = $1 AND group_id = $2 AND day_number = $3;`,
		userID,
		groupID,
		dayNumber,
	)
	err := row.Scan(
		&dailyLog.ID,
		&dailyLog.UserID,
		&dailyLog.GroupID,
		&dailyLog.DayNumber,
		&dailyLog.TaraweehRakaat,
		&dailyLog.TahajjudRakaat,
		&dailyLog.QuranPages,
		&dailyLog.Notes,
		&dailyLog.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrLogNotFound
		}
		return nil, errors.New("getting daily log error: " + err.Error())
	}
	return &dailyLog, nil
}

func (dr *DailyLogsRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]entity.DailyLog, error) {
	rows, err := dr.conn.Query(
		ctx,
		`SELECT l.id, l.user_id, l.group_id, l.day_number, l.taraweeh_rakaat, l.tahajjud_rakaat, l.quran_pages,
			COALESCE(l.notes, ''), l.updated_at, u.name, COALESCE(u.avatar_url, '')
		FROM daily_logs l JOIN users u ON u.id = l.user_id
		WHERE l.group_id = $1 ORDER BY l.day_number ASC, l.updated_at ASC;`,
		groupID,
	)
	if err != nil {
		return nil, errors.New("listing group logs error: " + err.Error())
	}
	return scanLogRows(rows)
}

func (dr *DailyLogsRepository) ListByGroupAndDay(ctx context.Context, groupID uuid.UUID, dayNumber int) ([]entity.DailyLog, error) {
	rows, err := dr.conn.Query(
		ctx,
		`SELECT l.id, l.user_id, l.group_id, l.day_number, l.taraweeh_rakaat, l.tahajjud_rakaat, l.quran_pages,
			COALESCE(l.notes, ''), l.updated_at, u.name, COALESCE(u.avatar_url, '')
		FROM daily_logs l JOIN users u ON u.id = l.user_id
		WHERE l.group_id = $1 AND l.day_number = $2 ORDER BY l.updated_at ASC;`,
		groupID,
		dayNumber,
	)
	if err != nil {
		return nil, errors.New("listing day logs error: " + err.Error())
	}
	return scanLogRows(rows)
}

func scanLogRows(rows pgx.Rows) ([]entity.DailyLog, error) {
	defer rows.Close()
	result := make([]entity.DailyLog, 0, 16)
	for rows.Next() {
		var dailyLog entity.DailyLog
		err := rows.Scan(
			&dailyLog.ID,
			&dailyLog.UserID,
			&dailyLog.GroupID,
			&dailyLog.DayNumber,
			&dailyLog.TaraweehRakaat,
			&dailyLog.TahajjudRakaat,
			&dailyLog.QuranPages,
			&dailyLog.Notes,
			&dailyLog.UpdatedAt,
			&dailyLog.UserName,
			&dailyLog.AvatarURL,
		)
		if err != nil {
			return nil, errors.New("daily log row parsing error: " + err.Error())
		}
		result = append(result, dailyLog)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected daily log rows error: " + rows.Err().Error())
	}
	return result, nil
}

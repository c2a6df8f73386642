package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/karam/musabaqa/internal/error_values"
	"github.com/karam/musabaqa/pkg/cleanup"
)

type LockedDaysRepository struct {
	conn PgConnection
}

func NewLockedDaysRepo(cfg DBConfig) *LockedDaysRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for lockedDaysRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for lockedDaysRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &LockedDaysRepository{
		conn: pool,
	}
}

func NewLockedDaysRepoWithConn(conn PgConnection) *LockedDaysRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for lockedDaysRepo: " + err.Error())
	}
	return &LockedDaysRepository{
		conn: conn,
	}
}

// Lock is an upsert: re-locking an already locked day refreshes who locked
// it and when.
func (lr *LockedDaysRepository) Lock(ctx context.Context, groupID uuid.UUID, dayNumber int, lockedBy uuid.UUID) error {
	_, err := lr.conn.Exec(
		ctx,
		`INSERT INTO locked_days (group_id, day_number, locked_by)
		VALUES ($1, $2, $3)
		ON CONFLICT (group_id, day_number) DO UPDATE SET locked_by = EXCLUDED.locked_by, locked_at = now();`,
		groupID,
		dayNumber,
		lockedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrGroupNotFound
			}
		}
		return errors.New("locking day error: " + err.Error())
	}
	return nil
}

// Unlock of a day that isn't locked is a no-op.
func (lr *LockedDaysRepository) Unlock(ctx context.Context, groupID uuid.UUID, dayNumber int) error {
	_, err := lr.conn.Exec(
		ctx,
		`DELETE FROM locked_days WHERE group_id = $1 AND day_number = $2;`,
		groupID,
		dayNumber,
	)
	if err != nil {
		return errors.New("unlocking day error: " + err.Error())
	}
	return nil
}

func (lr *LockedDaysRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]int, error) {
	rows, err := lr.conn.Query(
		ctx,
		`SELECT day_number FROM locked_days WHERE group_id = $1 ORDER BY day_number ASC;`,
		groupID,
	)
	if err != nil {
		return nil, errors.New("listing locked days error: " + err.Error())
	}
	defer rows.Close()
	result := make([]int, 0, 4)
	for rows.Next() {
		var dayNumber int
		if err := rows.Scan(&dayNumber); err != nil {
			return nil, errors.New("locked day row parsing error: " + err.Error())
		}
		result = append(result, dayNumber)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected locked day rows error: " + rows.Err().Error())
	}
	return result, nil
}

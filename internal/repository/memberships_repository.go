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

type MembershipsRepository struct {
	conn PgConnection
}

func NewMembershipsRepo(cfg DBConfig) *MembershipsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for membershipsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for membershipsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &MembershipsRepository{
		conn: pool,
	}
}

func NewMembershipsRepoWithConn(conn PgConnection) *MembershipsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for membershipsRepo: " + err.Error())
	}
	return &MembershipsRepository{
		conn: conn,
	}
}

func (mr *MembershipsRepository) Create(ctx context.Context, userID, groupID uuid.UUID, role entity.Role) error {
	_, err := mr.conn.Exec(
		ctx,
		`INSERT INTO group_memberships (user_id, group_id, role) VALUES ($1, $2, $3);`,
		userID,
		groupID,
		role,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrAlreadyMember
			// FK violation
			case "23503":
				return errorvalues.ErrGroupNotFound
			}
		}
		return errors.New("creating membership error: " + err.Error())
	}
	return nil
}

func (mr *MembershipsRepository) Find(ctx context.Context, userID, groupID uuid.UUID) (*entity.Membership, error) {
	var m entity.Membership
	row := mr.conn.QueryRow(
		ctx,
		`SELECT id, user_id, group_id, role, joined_at FROM group_memberships WHERE user_id = $1 AND group_id = $2;`,
		userID,
		groupID,
	)
	if err := row.Scan(&m.ID, &m.UserID, &m.GroupID, &m.Role, &m.JoinedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrNotMember
		}
		return nil, errors.New("searching membership error: " + err.Error())
	}
	return &m, nil
}

func (mr *MembershipsRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]entity.Member, error) {
	rows, err := mr.conn.Query(
		ctx,
		`SELECT m.id, m.user_id, m.group_id, m.role, m.joined_at, u.name, u.email, COALESCE(u.avatar_url, '')
		FROM group_memberships m JOIN users u ON u.id = m.user_id
		WHERE m.group_id = $1 ORDER BY m.joined_at ASC;`,
		groupID,
	)
	if err != nil {
		return nil, errors.New("listing members error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Member, 0, 8)
	for rows.Next() {
		var m entity.Member
		err = rows.Scan(&m.ID, &m.UserID, &m.GroupID, &m.Role, &m.JoinedAt, &m.UserName, &m.Email, &m.AvatarURL)
		if err != nil {
			return nil, errors.New("member row parsing error: " + err.Error())
		}
		result = append(result, m)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected member rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (mr *MembershipsRepository) Delete(ctx context.Context, userID, groupID uuid.UUID) error {
	ct, err := mr.conn.Exec(
		ctx,
		`DELETE FROM group_memberships WHERE user_id = $1 AND group_id = $2;`,
		userID,
		groupID,
	)
	if err != nil {
		return errors.New("deleting membership error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMemberNotFound
	}
	return nil
}

func (mr *MembershipsRepository) UpdateRole(ctx context.Context, userID, groupID uuid.UUID, role entity.Role) error {
	ct, err := mr.conn.Exec(
		ctx,
		`UPDATE group_memberships SET role = $1 WHERE user_id = $2 AND group_id = $3;`,
		role,
		userID,
		groupID,
	)
	if err != nil {
		return errors.New("updating member role error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMemberNotFound
	}
	return nil
}

package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/karam/musabaqa/pkg/cleanup"
	"github.com/karam/musabaqa/pkg/entity"
)

type AuditRepository struct {
	conn PgConnection
}

func NewAuditRepo(cfg DBConfig) *AuditRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for auditRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for auditRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &AuditRepository{
		conn: pool,
	}
}

func NewAuditRepoWithConn(conn PgConnection) *AuditRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for auditRepo: " + err.Error())
	}
	return &AuditRepository{
		conn: conn,
	}
}

func (ar *AuditRepository) Insert(ctx context.Context, record *entity.AuditRecord) error {
	_, err := ar.conn.Exec(
		ctx,
		`INSERT INTO audit_logs (user_id, group_id, action_type, entity, entity_id, old_value, new_value, ip, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		record.UserID,
		record.GroupID,
		record.ActionType,
		record.Entity,
		record.EntityID,
		record.OldValue,
		record.NewValue,
		record.IP,
		record.UserAgent,
	)
	if err != nil {
		return errors.New("inserting audit record error: " + err.Error())
	}
	return nil
}

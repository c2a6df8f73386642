package service

import (
	"context"
	"log/slog"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/karam/musabaqa/internal/repository"
	"github.com/karam/musabaqa/pkg/entity"
)

// recordAudit persists an audit row best-effort: a failed write is logged
// and never fails the action that produced it.
func recordAudit(ctx context.Context, repo repository.AuditRepositoryI, userID, groupID uuid.UUID, action entity.ActionType, entityName, entityID string, oldValue, newValue any, meta RequestMeta) {
	record := &entity.AuditRecord{
		UserID:     userID,
		GroupID:    groupID,
		ActionType: action,
		Entity:     entityName,
		EntityID:   entityID,
		IP:         meta.IP,
		UserAgent:  meta.UserAgent,
	}
	if oldValue != nil {
		if data, err := sonic.Marshal(oldValue); err == nil {
			record.OldValue = data
		}
	}
	if newValue != nil {
		if data, err := sonic.Marshal(newValue); err == nil {
			record.NewValue = data
		}
	}
	if err := repo.Insert(ctx, record); err != nil {
		slog.Error("writing audit record failed", slog.String("action", string(action)), slog.String("error", err.Error()))
	}
}

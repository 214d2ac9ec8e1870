package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/vfg2006/ad-state-sync/infrastructure/database/postgres"
	"github.com/vfg2006/ad-state-sync/internal/domain"
)

// AuditRepository é o coletor de eventos de auditoria da sincronização.
// Somente escrita; a leitura é feita pelo dashboard, fora deste serviço.
type AuditRepository interface {
	Record(event *domain.AuditEvent) error
}

type auditRepository struct {
	conn *postgres.Connection
}

func NewAuditRepository(conn *postgres.Connection) AuditRepository {
	return &auditRepository{
		conn: conn,
	}
}

func (r *auditRepository) Record(event *domain.AuditEvent) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("sync_audit_logs").
		Columns("project", "action_type", "action", "account_id", "status", "duration_ms", "remark", "created_at").
		Values(
			event.Project,
			event.ActionType,
			event.Action,
			event.AccountID,
			event.Status,
			event.DurationMS,
			event.Remark,
			event.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a query")
	}

	return nil
}

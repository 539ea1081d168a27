package repository

import (
	"context"
	"fmt"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

type AuditRepository struct {
	conn
}

func NewAuditRepo(db *dbpg.DB) *AuditRepository {
	return &AuditRepository{conn: newConn(db)}
}

func (r *AuditRepository) Create(ctx context.Context, a *domain.AuditRecord) error {
	query := `INSERT INTO admin_audit (id, action, transaction_id, operator, reason, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.exec(ctx, query, a.ID, a.Action, a.TransactionID, a.Operator, a.Reason, a.CreatedAt); err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}

	return nil
}

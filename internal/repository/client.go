package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

type ClientRepository struct {
	conn
}

func NewClientRepo(db *dbpg.DB) *ClientRepository {
	return &ClientRepository{conn: newConn(db)}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (id, name, phone, telegram_chat_id, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.exec(ctx, query, c.ID, c.Name, c.Phone, c.TelegramChatID, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}

	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	query := `SELECT id, name, phone, telegram_chat_id, created_at
			  FROM clients
			  WHERE id = $1`

	row, err := r.queryRow(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	var (
		c      domain.Client
		chatID sql.NullInt64
	)
	if err = row.Scan(&c.ID, &c.Name, &c.Phone, &chatID, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		if code, _ := pqCode(err); code == pqInvalidTextFormat {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("scan client: %w", err)
	}
	if chatID.Valid {
		c.TelegramChatID = &chatID.Int64
	}

	return &c, nil
}

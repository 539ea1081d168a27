package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/dbpg"
)

type WalletRepository struct {
	conn
}

func NewWalletRepo(db *dbpg.DB) *WalletRepository {
	return &WalletRepository{conn: newConn(db)}
}

// Append - единственная операция записи в кошелек: запись ledger и баланс меняются вместе.
// Списание, уводящее баланс в минус, отклоняется с ErrInsufficientFunds.
func (r *WalletRepository) Append(ctx context.Context, e *domain.WalletEntry) (decimal.Decimal, error) {
	var balance decimal.Decimal

	err := r.inTx(ctx, func(ctx context.Context) error {
		ensure := `INSERT INTO wallets (client_id, balance, updated_at)
				   VALUES ($1, 0, now())
				   ON CONFLICT (client_id) DO NOTHING`
		if _, err := r.exec(ctx, ensure, e.ClientID); err != nil {
			if code, _ := pqCode(err); code == pqForeignKeyViolation {
				return domain.ErrClientNotFound
			}
			return fmt.Errorf("ensure wallet: %w", err)
		}

		update := `UPDATE wallets
				   SET balance = balance + $2, updated_at = now()
				   WHERE client_id = $1 AND balance + $2 >= 0
				   RETURNING balance`
		row, err := r.queryRow(ctx, update, e.ClientID, e.Amount)
		if err != nil {
			return fmt.Errorf("update balance: %w", err)
		}
		if err = row.Scan(&balance); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrInsufficientFunds
			}
			return fmt.Errorf("scan balance: %w", err)
		}

		e.BalanceAfter = balance
		insert := `INSERT INTO wallet_entries (id, client_id, type, amount, balance_after, transaction_id, description, created_at)
				   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
		if _, err = r.exec(ctx, insert,
			e.ID, e.ClientID, e.Type, e.Amount, e.BalanceAfter,
			nullString(e.TransactionID), e.Description, e.CreatedAt,
		); err != nil {
			if code, _ := pqCode(err); code == pqUniqueViolation {
				return fmt.Errorf("%w: wallet already credited for transaction", domain.ErrValidation)
			}
			return fmt.Errorf("insert wallet entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	return balance, nil
}

func (r *WalletRepository) Get(ctx context.Context, clientID string, limit int) (*domain.Wallet, error) {
	w := &domain.Wallet{ClientID: clientID, Balance: decimal.Zero}

	row, err := r.queryRow(ctx, `SELECT balance FROM wallets WHERE client_id = $1`, clientID)
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	if err = row.Scan(&w.Balance); err != nil && !errors.Is(err, sql.ErrNoRows) {
		if code, _ := pqCode(err); code == pqInvalidTextFormat {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("scan wallet: %w", err)
	}

	query := `SELECT id, client_id, type, amount, balance_after, transaction_id, description, created_at
			  FROM wallet_entries
			  WHERE client_id = $1
			  ORDER BY created_at DESC
			  LIMIT $2`
	rows, err := r.query(ctx, query, clientID, limit)
	if err != nil {
		return nil, fmt.Errorf("list wallet entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			e    domain.WalletEntry
			txID sql.NullString
		)
		if err = rows.Scan(
			&e.ID, &e.ClientID, &e.Type, &e.Amount, &e.BalanceAfter,
			&txID, &e.Description, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan wallet entry: %w", err)
		}
		e.TransactionID = stringPtr(txID)
		w.Entries = append(w.Entries, e)
	}

	return w, rows.Err()
}

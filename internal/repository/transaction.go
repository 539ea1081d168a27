package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

const txColumns = `id, client_id, type, amount, status, provider, provider_payment_id, provider_status,
		description, provider_raw_data, payment_url, booking_id, hold_expires_at, hold_released,
		created_at, updated_at`

type TransactionRepository struct {
	conn
}

func NewTransactionRepo(db *dbpg.DB) *TransactionRepository {
	return &TransactionRepository{conn: newConn(db)}
}

func scanTransaction(row scanner) (*domain.Transaction, error) {
	var (
		t           domain.Transaction
		paymentID   sql.NullString
		provStatus  sql.NullString
		paymentURL  sql.NullString
		bookingID   sql.NullString
		holdExpires sql.NullTime
		raw         []byte
	)
	if err := row.Scan(
		&t.ID, &t.ClientID, &t.Type, &t.Amount, &t.Status, &t.Provider,
		&paymentID, &provStatus, &t.Description, &raw, &paymentURL, &bookingID,
		&holdExpires, &t.HoldReleased, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	t.ProviderPaymentID = stringPtr(paymentID)
	t.ProviderStatus = stringPtr(provStatus)
	t.PaymentURL = stringPtr(paymentURL)
	t.BookingID = stringPtr(bookingID)
	t.HoldExpiresAt = timePtr(holdExpires)
	t.ProviderRawData = raw

	return &t, nil
}

func (r *TransactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	query := `INSERT INTO transactions (id, client_id, type, amount, status, provider, description,
					provider_raw_data, hold_expires_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	var holdExpires sql.NullTime
	if t.HoldExpiresAt != nil {
		holdExpires = sql.NullTime{Time: *t.HoldExpiresAt, Valid: true}
	}
	raw := []byte(t.ProviderRawData)
	if len(raw) == 0 {
		raw = []byte("{}")
	}

	_, err := r.exec(ctx, query,
		t.ID, t.ClientID, t.Type, t.Amount, t.Status, t.Provider, t.Description,
		raw, holdExpires, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	return nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	row, err := r.queryRow(ctx, `SELECT `+txColumns+` FROM transactions WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}

	t, err := scanTransaction(row)
	if err != nil {
		return nil, r.mapErr(err, "scan transaction")
	}

	return t, nil
}

// GetByIDForUpdate - точка сериализации повторных webhook по одной транзакции.
func (r *TransactionRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Transaction, error) {
	row, err := r.queryRow(ctx, `SELECT `+txColumns+` FROM transactions WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		return nil, fmt.Errorf("lock transaction: %w", err)
	}

	t, err := scanTransaction(row)
	if err != nil {
		return nil, r.mapErr(err, "scan transaction")
	}

	return t, nil
}

// Transition меняет статус только если текущий равен ожидаемому.
func (r *TransactionRepository) Transition(ctx context.Context, in domain.TransitionInput) error {
	if !domain.CanTransition(in.From, in.To) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrTransactionNotPending, in.From, in.To)
	}

	query := `UPDATE transactions
			  SET status = $3,
			      provider_status = COALESCE(NULLIF($4::text, ''), provider_status),
			      provider_payment_id = COALESCE(NULLIF($5::text, ''), provider_payment_id),
			      updated_at = now()
			  WHERE id = $1 AND status = $2`
	res, err := r.exec(ctx, query, in.ID, in.From, in.To, in.ProviderStatus, in.ProviderPaymentID)
	if err != nil {
		return r.mapErr(err, "transition transaction")
	}

	rows, err := affected(res)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrTransactionNotPending
	}

	return nil
}

// UpdateProviderStatus фиксирует промежуточный статус банка без смены статуса транзакции.
func (r *TransactionRepository) UpdateProviderStatus(ctx context.Context, id, providerStatus, providerPaymentID string) error {
	query := `UPDATE transactions
			  SET provider_status = $2,
			      provider_payment_id = COALESCE(NULLIF($3::text, ''), provider_payment_id),
			      updated_at = now()
			  WHERE id = $1`
	if _, err := r.exec(ctx, query, id, providerStatus, providerPaymentID); err != nil {
		return r.mapErr(err, "update provider status")
	}

	return nil
}

func (r *TransactionRepository) LinkBooking(ctx context.Context, id, bookingID string) error {
	query := `UPDATE transactions SET booking_id = $2, updated_at = now() WHERE id = $1`
	if _, err := r.exec(ctx, query, id, bookingID); err != nil {
		return r.mapErr(err, "link booking")
	}

	return nil
}

func (r *TransactionRepository) SetPaymentURL(ctx context.Context, id, url string) error {
	query := `UPDATE transactions SET payment_url = $2, updated_at = now() WHERE id = $1`
	if _, err := r.exec(ctx, query, id, url); err != nil {
		return r.mapErr(err, "set payment url")
	}

	return nil
}

// MarkHoldReleased возвращает true только для первого вызова.
func (r *TransactionRepository) MarkHoldReleased(ctx context.Context, id string) (bool, error) {
	query := `UPDATE transactions SET hold_released = true, updated_at = now()
			  WHERE id = $1 AND NOT hold_released`
	res, err := r.exec(ctx, query, id)
	if err != nil {
		return false, r.mapErr(err, "mark hold released")
	}

	rows, err := affected(res)
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

// ClaimExpiredGroupHolds помечает истекшие групповые hold освобожденными и возвращает их.
// Пустой groupID - все группы. Места вызывающий возвращает в той же транзакции.
func (r *TransactionRepository) ClaimExpiredGroupHolds(ctx context.Context, groupID string) ([]*domain.Transaction, error) {
	query := `UPDATE transactions
			  SET hold_released = true, updated_at = now()
			  WHERE status = 'pending'
			    AND NOT hold_released
			    AND hold_expires_at < now()
			    AND provider_raw_data->>'kind' = $1::text
			    AND ($2::text = '' OR provider_raw_data->>'group_training_id' = $2::text)
			  RETURNING ` + txColumns
	rows, err := r.query(ctx, query, domain.IntentGroup, groupID)
	if err != nil {
		return nil, fmt.Errorf("claim expired group holds: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// ListStuck - pending транзакции с истекшим hold, созданные не раньше since.
func (r *TransactionRepository) ListStuck(ctx context.Context, since time.Time) ([]*domain.Transaction, error) {
	query := `SELECT ` + txColumns + `
			  FROM transactions
			  WHERE status = 'pending'
			    AND hold_expires_at < now()
			    AND created_at >= $1
			  ORDER BY created_at`
	rows, err := r.query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("list stuck transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func collectTransactions(rows *sql.Rows) ([]*domain.Transaction, error) {
	var res []*domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

func (r *TransactionRepository) mapErr(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrTransactionNotFound
	}
	if code, _ := pqCode(err); code == pqInvalidTextFormat {
		return domain.ErrTransactionNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

const referralColumns = `id, referrer_id, referee_id, status, referrer_bonus, referee_bonus,
		referrer_bonus_paid, referee_bonus_paid, completed_at, created_at`

type ReferralRepository struct {
	conn
}

func NewReferralRepo(db *dbpg.DB) *ReferralRepository {
	return &ReferralRepository{conn: newConn(db)}
}

func scanReferral(row scanner) (*domain.ReferralTransaction, error) {
	var (
		rt          domain.ReferralTransaction
		completedAt sql.NullTime
	)
	if err := row.Scan(
		&rt.ID, &rt.ReferrerID, &rt.RefereeID, &rt.Status, &rt.ReferrerBonus, &rt.RefereeBonus,
		&rt.ReferrerBonusPaid, &rt.RefereeBonusPaid, &completedAt, &rt.CreatedAt,
	); err != nil {
		return nil, err
	}
	rt.CompletedAt = timePtr(completedAt)

	return &rt, nil
}

func (r *ReferralRepository) Create(ctx context.Context, rt *domain.ReferralTransaction) error {
	query := `INSERT INTO referral_transactions (id, referrer_id, referee_id, status, referrer_bonus, referee_bonus, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.exec(ctx, query,
		rt.ID, rt.ReferrerID, rt.RefereeID, rt.Status, rt.ReferrerBonus, rt.RefereeBonus, rt.CreatedAt,
	)
	if err != nil {
		switch code, _ := pqCode(err); code {
		case pqUniqueViolation:
			return domain.ErrAlreadyReferred
		case pqForeignKeyViolation, pqInvalidTextFormat:
			return domain.ErrClientNotFound
		case pqCheckViolation:
			return fmt.Errorf("%w: client cannot refer themselves", domain.ErrValidation)
		}
		return fmt.Errorf("insert referral: %w", err)
	}

	return nil
}

func (r *ReferralRepository) GetByReferee(ctx context.Context, refereeID string) (*domain.ReferralTransaction, error) {
	row, err := r.queryRow(ctx, `SELECT `+referralColumns+` FROM referral_transactions WHERE referee_id = $1`, refereeID)
	if err != nil {
		return nil, fmt.Errorf("get referral: %w", err)
	}

	rt, err := scanReferral(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReferralNotFound
		}
		if code, _ := pqCode(err); code == pqInvalidTextFormat {
			return nil, domain.ErrReferralNotFound
		}
		return nil, fmt.Errorf("scan referral: %w", err)
	}

	return rt, nil
}

// Advance - условный переход статуса. Если связь не в статусе from, возвращает nil без ошибки.
func (r *ReferralRepository) Advance(ctx context.Context, refereeID string, from, to domain.ReferralStatus) (*domain.ReferralTransaction, error) {
	query := `UPDATE referral_transactions
			  SET status = $3
			  WHERE referee_id = $1 AND status = $2
			  RETURNING ` + referralColumns
	row, err := r.queryRow(ctx, query, refereeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("advance referral: %w", err)
	}

	rt, err := scanReferral(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if code, _ := pqCode(err); code == pqInvalidTextFormat {
			return nil, nil
		}
		return nil, fmt.Errorf("scan referral: %w", err)
	}

	return rt, nil
}

// MarkBonusesPaid закрывает связь: оба флага выставляются один раз и только из trained.
func (r *ReferralRepository) MarkBonusesPaid(ctx context.Context, id string) error {
	query := `UPDATE referral_transactions
			  SET status = 'completed',
			      referrer_bonus_paid = true,
			      referee_bonus_paid = true,
			      completed_at = now()
			  WHERE id = $1
			    AND status = 'trained'
			    AND NOT referrer_bonus_paid
			    AND NOT referee_bonus_paid`
	res, err := r.exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("mark bonuses paid: %w", err)
	}

	rows, err := affected(res)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrReferralNotFound
	}

	return nil
}

// ListDepositCandidates - приглашенные в registered, у которых уже есть пополнение кошелька.
func (r *ReferralRepository) ListDepositCandidates(ctx context.Context) ([]string, error) {
	query := `SELECT rt.referee_id
			  FROM referral_transactions rt
			  WHERE rt.status = 'registered'
			    AND EXISTS (SELECT 1 FROM wallet_entries we
			                WHERE we.client_id = rt.referee_id AND we.type = 'refill')`
	return r.listIDs(ctx, query)
}

// ListTrainingCandidates - приглашенные в deposited с уже прошедшей подтвержденной тренировкой.
func (r *ReferralRepository) ListTrainingCandidates(ctx context.Context) ([]string, error) {
	query := `SELECT rt.referee_id
			  FROM referral_transactions rt
			  WHERE rt.status = 'deposited'
			    AND EXISTS (SELECT 1 FROM bookings b
			                WHERE b.client_id = rt.referee_id
			                  AND b.status = 'confirmed'
			                  AND b.date + b.end_time < LOCALTIMESTAMP)`
	return r.listIDs(ctx, query)
}

func (r *ReferralRepository) listIDs(ctx context.Context, query string) ([]string, error) {
	rows, err := r.query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list referral candidates: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan referee id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

// newMockDB возвращает контекст с открытой транзакцией sqlmock: запросы репозиториев
// идут через нее, минуя ретраи dbpg.
func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock, context.Context) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	mock.ExpectBegin()
	tx, err := sqlDB.Begin()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	return &dbpg.DB{Master: sqlDB}, mock, withTx(context.Background(), tx)
}

func TestTxManager_WithinTx(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	m := NewTxManager(&dbpg.DB{Master: sqlDB})

	t.Run("commit", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE group_trainings").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := m.WithinTx(context.Background(), func(ctx context.Context) error {
			assert.NotNil(t, txFromContext(ctx))
			return NewGroupRepo(m.db).ReleaseSeats(ctx, uuid.New().String(), 1)
		})
		require.NoError(t, err)
	})

	t.Run("rollback on error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectRollback()

		err := m.WithinTx(context.Background(), func(ctx context.Context) error {
			return domain.ErrCapacityExceeded
		})
		assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	})

	t.Run("nested call joins outer transaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectCommit()

		err := m.WithinTx(context.Background(), func(ctx context.Context) error {
			outer := txFromContext(ctx)
			return m.WithinTx(ctx, func(ctx context.Context) error {
				assert.Same(t, outer, txFromContext(ctx))
				return nil
			})
		})
		require.NoError(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupRepository_ReserveSeats(t *testing.T) {
	groupID := uuid.New().String()

	t.Run("reserved", func(t *testing.T) {
		db, mock, ctx := newMockDB(t)
		mock.ExpectExec("UPDATE group_trainings").
			WithArgs(groupID, 2).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewGroupRepo(db).ReserveSeats(ctx, groupID, 2))
	})

	t.Run("confirmed group still sells seats", func(t *testing.T) {
		db, mock, ctx := newMockDB(t)
		mock.ExpectExec(`status IN \('open', 'confirmed'\)`).
			WithArgs(groupID, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewGroupRepo(db).ReserveSeats(ctx, groupID, 1))
	})

	t.Run("confirmed group without seats", func(t *testing.T) {
		db, mock, ctx := newMockDB(t)
		mock.ExpectExec("UPDATE group_trainings").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT status FROM group_trainings").
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("confirmed"))

		assert.ErrorIs(t, NewGroupRepo(db).ReserveSeats(ctx, groupID, 1), domain.ErrCapacityExceeded)
	})

	t.Run("capacity exceeded", func(t *testing.T) {
		db, mock, ctx := newMockDB(t)
		mock.ExpectExec("UPDATE group_trainings").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT status FROM group_trainings").
			WithArgs(groupID).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("open"))

		assert.ErrorIs(t, NewGroupRepo(db).ReserveSeats(ctx, groupID, 2), domain.ErrCapacityExceeded)
	})

	t.Run("group closed", func(t *testing.T) {
		db, mock, ctx := newMockDB(t)
		mock.ExpectExec("UPDATE group_trainings").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT status FROM group_trainings").
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("cancelled"))

		assert.ErrorIs(t, NewGroupRepo(db).ReserveSeats(ctx, groupID, 1), domain.ErrGroupClosed)
	})

	t.Run("group not found", func(t *testing.T) {
		db, mock, ctx := newMockDB(t)
		mock.ExpectExec("UPDATE group_trainings").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT status FROM group_trainings").WillReturnError(sql.ErrNoRows)

		assert.ErrorIs(t, NewGroupRepo(db).ReserveSeats(ctx, groupID, 1), domain.ErrGroupNotFound)
	})

	t.Run("non-positive count", func(t *testing.T) {
		db, _, ctx := newMockDB(t)

		assert.ErrorIs(t, NewGroupRepo(db).ReserveSeats(ctx, groupID, 0), domain.ErrValidation)
	})
}

func TestSlotRepository_HoldSlot(t *testing.T) {
	slotID := uuid.New().String()
	txID := uuid.New().String()
	until := time.Now().Add(5 * time.Minute)

	t.Run("held", func(t *testing.T) {
		db, mock, ctx := newMockDB(t)
		mock.ExpectExec("UPDATE schedule_slots").
			WithArgs(slotID, txID, until).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewSlotRepo(db).HoldSlot(ctx, slotID, txID, until))
	})

	t.Run("already held by another payment", func(t *testing.T) {
		db, mock, ctx := newMockDB(t)
		mock.ExpectExec("UPDATE schedule_slots").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT status FROM schedule_slots").
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("hold"))

		assert.ErrorIs(t, NewSlotRepo(db).HoldSlot(ctx, slotID, txID, until), domain.ErrSlotUnavailable)
	})

	t.Run("unknown slot", func(t *testing.T) {
		db, mock, ctx := newMockDB(t)
		mock.ExpectExec("UPDATE schedule_slots").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT status FROM schedule_slots").WillReturnError(sql.ErrNoRows)

		assert.ErrorIs(t, NewSlotRepo(db).HoldSlot(ctx, slotID, txID, until), domain.ErrSlotNotFound)
	})
}

func TestSlotRepository_ReleaseSlot_OnlyOwnHold(t *testing.T) {
	db, mock, ctx := newMockDB(t)
	slotID := uuid.New().String()
	txID := uuid.New().String()

	mock.ExpectExec("UPDATE schedule_slots").
		WithArgs(slotID, txID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	released, err := NewSlotRepo(db).ReleaseSlot(ctx, slotID, txID)

	require.NoError(t, err)
	assert.False(t, released)
}

func TestSlotRepository_ReclaimExpired(t *testing.T) {
	db, mock, ctx := newMockDB(t)
	ids := []string{uuid.New().String(), uuid.New().String()}

	mock.ExpectQuery("UPDATE schedule_slots").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(ids[0]).AddRow(ids[1]))

	got, err := NewSlotRepo(db).ReclaimExpired(ctx)

	require.NoError(t, err)
	assert.Equal(t, ids, got)
}

func TestWalletRepository_Append(t *testing.T) {
	clientID := uuid.New().String()
	entry := func(amount int64) *domain.WalletEntry {
		return &domain.WalletEntry{
			ID:        uuid.New().String(),
			ClientID:  clientID,
			Type:      domain.WalletEntryPayment,
			Amount:    decimal.NewFromInt(amount),
			CreatedAt: time.Now().UTC(),
		}
	}

	t.Run("debit within balance", func(t *testing.T) {
		db, mock, ctx := newMockDB(t)
		mock.ExpectExec("INSERT INTO wallets").WithArgs(clientID).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("UPDATE wallets").
			WithArgs(clientID, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow("700.00"))
		mock.ExpectExec("INSERT INTO wallet_entries").WillReturnResult(sqlmock.NewResult(0, 1))

		e := entry(-300)
		balance, err := NewWalletRepo(db).Append(ctx, e)

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(700).Equal(balance))
		assert.True(t, balance.Equal(e.BalanceAfter))
	})

	t.Run("insufficient funds", func(t *testing.T) {
		db, mock, ctx := newMockDB(t)
		mock.ExpectExec("INSERT INTO wallets").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("UPDATE wallets").WillReturnRows(sqlmock.NewRows([]string{"balance"}))

		_, err := NewWalletRepo(db).Append(ctx, entry(-5000))

		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})

	t.Run("unknown client", func(t *testing.T) {
		db, mock, ctx := newMockDB(t)
		mock.ExpectExec("INSERT INTO wallets").WillReturnError(&pq.Error{Code: pqForeignKeyViolation})

		_, err := NewWalletRepo(db).Append(ctx, entry(100))

		assert.ErrorIs(t, err, domain.ErrClientNotFound)
	})
}

func TestTransactionRepository_Transition(t *testing.T) {
	in := domain.TransitionInput{
		ID:                uuid.New().String(),
		From:              domain.TransactionStatusPending,
		To:                domain.TransactionStatusCompleted,
		ProviderStatus:    "CONFIRMED",
		ProviderPaymentID: "pay-1",
	}

	t.Run("applied", func(t *testing.T) {
		db, mock, ctx := newMockDB(t)
		mock.ExpectExec("UPDATE transactions").
			WithArgs(in.ID, "pending", "completed", "CONFIRMED", "pay-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewTransactionRepo(db).Transition(ctx, in))
	})

	t.Run("status already changed", func(t *testing.T) {
		db, mock, ctx := newMockDB(t)
		mock.ExpectExec("UPDATE transactions").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, NewTransactionRepo(db).Transition(ctx, in), domain.ErrTransactionNotPending)
	})

	t.Run("forbidden transition is rejected before the query", func(t *testing.T) {
		db, _, ctx := newMockDB(t)
		bad := in
		bad.From = domain.TransactionStatusFailed

		assert.ErrorIs(t, NewTransactionRepo(db).Transition(ctx, bad), domain.ErrTransactionNotPending)
	})
}

func TestTransactionRepository_MarkHoldReleased(t *testing.T) {
	db, mock, ctx := newMockDB(t)
	id := uuid.New().String()
	repo := NewTransactionRepo(db)

	mock.ExpectExec("UPDATE transactions SET hold_released").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE transactions SET hold_released").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))

	first, err := repo.MarkHoldReleased(ctx, id)
	require.NoError(t, err)
	second, err := repo.MarkHoldReleased(ctx, id)
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
}

func TestReferralRepository_Advance_NotInExpectedStatus(t *testing.T) {
	db, mock, ctx := newMockDB(t)
	refereeID := uuid.New().String()

	mock.ExpectQuery("UPDATE referral_transactions").
		WithArgs(refereeID, "deposited", "trained").
		WillReturnError(sql.ErrNoRows)

	rt, err := NewReferralRepo(db).Advance(ctx, refereeID, domain.ReferralDeposited, domain.ReferralTrained)

	require.NoError(t, err)
	assert.Nil(t, rt)
}

func TestReferralRepository_Create_MapsConstraintErrors(t *testing.T) {
	tests := []struct {
		code pq.ErrorCode
		want error
	}{
		{code: pqUniqueViolation, want: domain.ErrAlreadyReferred},
		{code: pqForeignKeyViolation, want: domain.ErrClientNotFound},
		{code: pqCheckViolation, want: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			db, mock, ctx := newMockDB(t)
			mock.ExpectExec("INSERT INTO referral_transactions").WillReturnError(&pq.Error{Code: tt.code})

			err := NewReferralRepo(db).Create(ctx, &domain.ReferralTransaction{ID: uuid.New().String()})

			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestReferralRepository_MarkBonusesPaid_Once(t *testing.T) {
	db, mock, ctx := newMockDB(t)
	id := uuid.New().String()

	mock.ExpectExec("UPDATE referral_transactions").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, NewReferralRepo(db).MarkBonusesPaid(ctx, id), domain.ErrReferralNotFound)
}

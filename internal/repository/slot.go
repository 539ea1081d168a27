package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

const slotColumns = `id, instructor_id, date, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
		status, hold_until, hold_transaction_id, location, price, created_at, updated_at`

// reclaimSlotsQuery - ленивое снятие истекших hold: любой путь чтения сначала пишет исправление.
const reclaimSlotsQuery = `UPDATE schedule_slots
		  SET status = 'available', hold_until = NULL, hold_transaction_id = NULL, updated_at = now()
		  WHERE status = 'hold' AND hold_until < now()`

type SlotRepository struct {
	conn
}

func NewSlotRepo(db *dbpg.DB) *SlotRepository {
	return &SlotRepository{conn: newConn(db)}
}

func scanSlot(row scanner) (*domain.ScheduleSlot, error) {
	var (
		s         domain.ScheduleSlot
		holdUntil sql.NullTime
		holdTxID  sql.NullString
	)
	if err := row.Scan(
		&s.ID, &s.InstructorID, &s.Date, &s.StartTime, &s.EndTime,
		&s.Status, &holdUntil, &holdTxID, &s.Location, &s.Price,
		&s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	s.HoldUntil = timePtr(holdUntil)
	s.HoldTransactionID = stringPtr(holdTxID)

	return &s, nil
}

func (r *SlotRepository) Create(ctx context.Context, s *domain.ScheduleSlot) error {
	query := `INSERT INTO schedule_slots (id, instructor_id, date, start_time, end_time, status, location, price, created_at, updated_at)
			  VALUES ($1, $2, $3, $4::time, $5::time, $6, $7, $8, $9, $10)`
	_, err := r.exec(ctx, query,
		s.ID, s.InstructorID, s.Date, s.StartTime, s.EndTime,
		s.Status, s.Location, s.Price, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if code, _ := pqCode(err); code == pqUniqueViolation {
			return fmt.Errorf("%w: instructor already has a slot at this time", domain.ErrValidation)
		}
		return fmt.Errorf("insert slot: %w", err)
	}

	return nil
}

func (r *SlotRepository) GetByID(ctx context.Context, id string) (*domain.ScheduleSlot, error) {
	if _, err := r.exec(ctx, reclaimSlotsQuery+` AND id = $1`, id); err != nil {
		return nil, r.mapErr(err, "reclaim slot")
	}

	row, err := r.queryRow(ctx, `SELECT `+slotColumns+` FROM schedule_slots WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	s, err := scanSlot(row)
	if err != nil {
		return nil, r.mapErr(err, "scan slot")
	}

	return s, nil
}

// GetByIDForUpdate блокирует строку слота до конца транзакции.
// Истекший hold в возвращаемом значении уже исправлен на available.
func (r *SlotRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.ScheduleSlot, error) {
	row, err := r.queryRow(ctx, `SELECT `+slotColumns+` FROM schedule_slots WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		return nil, fmt.Errorf("lock slot: %w", err)
	}

	s, err := scanSlot(row)
	if err != nil {
		return nil, r.mapErr(err, "scan slot")
	}

	if s.HoldExpired(time.Now()) {
		if _, err = r.exec(ctx, reclaimSlotsQuery+` AND id = $1`, id); err != nil {
			return nil, fmt.Errorf("reclaim slot: %w", err)
		}
		s.Status = domain.SlotStatusAvailable
		s.HoldUntil = nil
		s.HoldTransactionID = nil
	}

	return s, nil
}

func (r *SlotRepository) List(ctx context.Context, f domain.SlotFilter) ([]*domain.ScheduleSlot, error) {
	var (
		args  []any
		where []string
	)
	if f.InstructorID != "" {
		args = append(args, f.InstructorID)
		where = append(where, fmt.Sprintf("instructor_id = $%d", len(args)))
	}
	if f.Date != nil {
		args = append(args, *f.Date)
		where = append(where, fmt.Sprintf("date = $%d", len(args)))
	}

	filter := ""
	if len(where) > 0 {
		filter = " AND " + strings.Join(where, " AND ")
	}
	if _, err := r.exec(ctx, reclaimSlotsQuery+filter, args...); err != nil {
		return nil, r.mapErr(err, "reclaim slots")
	}

	query := `SELECT ` + slotColumns + ` FROM schedule_slots`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY date, start_time`

	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, r.mapErr(err, "list slots")
	}
	defer rows.Close()

	var res []*domain.ScheduleSlot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

// HoldSlot ставит hold одним условным UPDATE: проходит только available или истекший hold.
func (r *SlotRepository) HoldSlot(ctx context.Context, slotID, transactionID string, until time.Time) error {
	query := `UPDATE schedule_slots
			  SET status = 'hold', hold_until = $3, hold_transaction_id = $2, updated_at = now()
			  WHERE id = $1
			    AND (status = 'available' OR (status = 'hold' AND hold_until < now()))`
	res, err := r.exec(ctx, query, slotID, transactionID, until)
	if err != nil {
		return r.mapErr(err, "hold slot")
	}

	rows, err := affected(res)
	if err != nil {
		return err
	}
	if rows == 0 {
		return r.unavailableReason(ctx, slotID)
	}

	return nil
}

// ReleaseSlot снимает только hold указанной транзакции. Повторный вызов - no-op.
func (r *SlotRepository) ReleaseSlot(ctx context.Context, slotID, transactionID string) (bool, error) {
	query := `UPDATE schedule_slots
			  SET status = 'available', hold_until = NULL, hold_transaction_id = NULL, updated_at = now()
			  WHERE id = $1 AND status = 'hold' AND hold_transaction_id = $2`
	res, err := r.exec(ctx, query, slotID, transactionID)
	if err != nil {
		return false, r.mapErr(err, "release slot")
	}

	rows, err := affected(res)
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

// ReleaseBookedSlot возвращает в продажу слот отмененной или возвращенной брони.
func (r *SlotRepository) ReleaseBookedSlot(ctx context.Context, slotID string) error {
	query := `UPDATE schedule_slots
			  SET status = 'available', updated_at = now()
			  WHERE id = $1 AND status = 'booked'`
	if _, err := r.exec(ctx, query, slotID); err != nil {
		return r.mapErr(err, "release booked slot")
	}

	return nil
}

// ConfirmSlot переводит слот в booked. Hold транзакции подходит даже истекший,
// свободный слот тоже: оплата пришла, а слот никто не занял.
func (r *SlotRepository) ConfirmSlot(ctx context.Context, slotID, transactionID string) error {
	query := `UPDATE schedule_slots
			  SET status = 'booked', hold_until = NULL, hold_transaction_id = NULL, updated_at = now()
			  WHERE id = $1
			    AND (status = 'available'
			         OR (status = 'hold' AND (hold_transaction_id = $2 OR hold_until < now())))`
	res, err := r.exec(ctx, query, slotID, transactionID)
	if err != nil {
		return r.mapErr(err, "confirm slot")
	}

	rows, err := affected(res)
	if err != nil {
		return err
	}
	if rows == 0 {
		return r.unavailableReason(ctx, slotID)
	}

	return nil
}

// ReclaimExpired - фоновая зачистка истекших hold, возвращает id освобожденных слотов.
func (r *SlotRepository) ReclaimExpired(ctx context.Context) ([]string, error) {
	rows, err := r.query(ctx, reclaimSlotsQuery+` RETURNING id`)
	if err != nil {
		return nil, fmt.Errorf("reclaim expired slots: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan slot id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *SlotRepository) unavailableReason(ctx context.Context, slotID string) error {
	row, err := r.queryRow(ctx, `SELECT status FROM schedule_slots WHERE id = $1`, slotID)
	if err != nil {
		return fmt.Errorf("check slot: %w", err)
	}

	var status string
	if err = row.Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSlotNotFound
		}
		return fmt.Errorf("scan slot status: %w", err)
	}

	return domain.ErrSlotUnavailable
}

func (r *SlotRepository) mapErr(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrSlotNotFound
	}
	if code, _ := pqCode(err); code == pqInvalidTextFormat {
		return domain.ErrSlotNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

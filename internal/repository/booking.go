package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
)

const bookingColumns = `id, client_id, transaction_id, booking_type, instructor_id, slot_id, group_training_id,
		date, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), sport_type,
		participants_count, participants_names, price_total, status, created_at, updated_at`

type BookingRepository struct {
	conn
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{conn: newConn(db)}
}

func scanBooking(row scanner) (*domain.Booking, error) {
	var (
		b            domain.Booking
		txID         sql.NullString
		instructorID sql.NullString
		slotID       sql.NullString
		groupID      sql.NullString
	)
	if err := row.Scan(
		&b.ID, &b.ClientID, &txID, &b.BookingType, &instructorID, &slotID, &groupID,
		&b.Date, &b.StartTime, &b.EndTime, &b.SportType,
		&b.ParticipantsCount, pq.Array(&b.ParticipantsNames), &b.PriceTotal, &b.Status,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	b.TransactionID = stringPtr(txID)
	b.InstructorID = stringPtr(instructorID)
	b.SlotID = stringPtr(slotID)
	b.GroupTrainingID = stringPtr(groupID)

	return &b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, client_id, transaction_id, booking_type, instructor_id, slot_id,
					group_training_id, date, start_time, end_time, sport_type, participants_count,
					participants_names, price_total, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::time, $10::time, $11, $12, $13, $14, $15, $16, $17)`

	names := b.ParticipantsNames
	if names == nil {
		names = []string{}
	}

	_, err := r.exec(ctx, query,
		b.ID, b.ClientID, nullString(b.TransactionID), b.BookingType,
		nullString(b.InstructorID), nullString(b.SlotID), nullString(b.GroupTrainingID),
		b.Date, b.StartTime, b.EndTime, b.SportType, b.ParticipantsCount,
		pq.Array(names), b.PriceTotal, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if code, constraint := pqCode(err); code == pqUniqueViolation {
			if constraint == "uq_bookings_active_slot" {
				return domain.ErrSlotUnavailable
			}
			return domain.ErrBookingExists
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	row, err := r.queryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		return nil, r.mapErr(err, "scan booking")
	}

	return b, nil
}

func (r *BookingRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Booking, error) {
	row, err := r.queryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		return nil, fmt.Errorf("lock booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		return nil, r.mapErr(err, "scan booking")
	}

	return b, nil
}

func (r *BookingRepository) GetByTransaction(ctx context.Context, transactionID string) (*domain.Booking, error) {
	row, err := r.queryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE transaction_id = $1`, transactionID)
	if err != nil {
		return nil, fmt.Errorf("get booking by transaction: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		return nil, r.mapErr(err, "scan booking")
	}

	return b, nil
}

func (r *BookingRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE client_id = $1
			  ORDER BY created_at DESC`
	rows, err := r.query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by client: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// UpdateStatus - условный переход: только из одного из активных статусов.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, to domain.BookingStatus) error {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = ANY($3)`
	res, err := r.exec(ctx, query, id, to, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return r.mapErr(err, "update booking status")
	}

	rows, err := affected(res)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrBookingNotActive
	}

	return nil
}

func (r *BookingRepository) mapErr(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrBookingNotFound
	}
	if code, _ := pqCode(err); code == pqInvalidTextFormat {
		return domain.ErrBookingNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

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

const groupColumns = `id, slot_id, date, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
		sport_type, max_participants, current_participants, status, price_per_person, location,
		created_at, updated_at`

type GroupRepository struct {
	conn
}

func NewGroupRepo(db *dbpg.DB) *GroupRepository {
	return &GroupRepository{conn: newConn(db)}
}

func scanGroup(row scanner) (*domain.GroupTraining, error) {
	var (
		g      domain.GroupTraining
		slotID sql.NullString
	)
	if err := row.Scan(
		&g.ID, &slotID, &g.Date, &g.StartTime, &g.EndTime,
		&g.SportType, &g.MaxParticipants, &g.CurrentParticipants, &g.Status,
		&g.PricePerPerson, &g.Location, &g.CreatedAt, &g.UpdatedAt,
	); err != nil {
		return nil, err
	}
	g.SlotID = stringPtr(slotID)

	return &g, nil
}

func (r *GroupRepository) Create(ctx context.Context, g *domain.GroupTraining) error {
	query := `INSERT INTO group_trainings (id, slot_id, date, start_time, end_time, sport_type,
					max_participants, current_participants, status, price_per_person, location, created_at, updated_at)
			  VALUES ($1, $2, $3, $4::time, $5::time, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.exec(ctx, query,
		g.ID, nullString(g.SlotID), g.Date, g.StartTime, g.EndTime, g.SportType,
		g.MaxParticipants, g.CurrentParticipants, g.Status, g.PricePerPerson, g.Location,
		g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert group training: %w", err)
	}

	return nil
}

func (r *GroupRepository) GetByID(ctx context.Context, id string) (*domain.GroupTraining, error) {
	row, err := r.queryRow(ctx, `SELECT `+groupColumns+` FROM group_trainings WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get group training: %w", err)
	}

	g, err := scanGroup(row)
	if err != nil {
		return nil, r.mapErr(err, "scan group training")
	}

	return g, nil
}

func (r *GroupRepository) List(ctx context.Context, date *time.Time) ([]*domain.GroupTraining, error) {
	query := `SELECT ` + groupColumns + ` FROM group_trainings`
	var args []any
	if date != nil {
		query += ` WHERE date = $1`
		args = append(args, *date)
	}
	query += ` ORDER BY date, start_time`

	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list group trainings: %w", err)
	}
	defer rows.Close()

	var res []*domain.GroupTraining
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan group training: %w", err)
		}
		res = append(res, g)
	}

	return res, rows.Err()
}

// ReserveSeats - примитив против овербукинга: проверка и инкремент в одном выражении.
func (r *GroupRepository) ReserveSeats(ctx context.Context, groupID string, count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: seats count must be positive", domain.ErrValidation)
	}

	query := `UPDATE group_trainings
			  SET current_participants = current_participants + $2, updated_at = now()
			  WHERE id = $1
			    AND status IN ('open', 'confirmed')
			    AND current_participants + $2 <= max_participants`
	res, err := r.exec(ctx, query, groupID, count)
	if err != nil {
		return r.mapErr(err, "reserve seats")
	}

	rows, err := affected(res)
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}

	// Определяем причину: группы нет, она закрыта или мест не хватает
	row, err := r.queryRow(ctx, `SELECT status FROM group_trainings WHERE id = $1`, groupID)
	if err != nil {
		return fmt.Errorf("check group training: %w", err)
	}
	var status domain.GroupStatus
	if err = row.Scan(&status); err != nil {
		return r.mapErr(err, "scan group status")
	}
	if !status.AcceptsSeats() {
		return domain.ErrGroupClosed
	}

	return domain.ErrCapacityExceeded
}

// ReleaseSeats - симметричный декремент, не опускается ниже нуля.
func (r *GroupRepository) ReleaseSeats(ctx context.Context, groupID string, count int) error {
	query := `UPDATE group_trainings
			  SET current_participants = GREATEST(current_participants - $2, 0), updated_at = now()
			  WHERE id = $1`
	res, err := r.exec(ctx, query, groupID, count)
	if err != nil {
		return r.mapErr(err, "release seats")
	}

	rows, err := affected(res)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrGroupNotFound
	}

	return nil
}

func (r *GroupRepository) mapErr(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrGroupNotFound
	}
	if code, _ := pqCode(err); code == pqInvalidTextFormat {
		return domain.ErrGroupNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

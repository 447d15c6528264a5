package rate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, r *PeakSeasonRate) error
	GetByID(ctx context.Context, id string) (*PeakSeasonRate, error)
	ListByProperty(ctx context.Context, propertyID string) ([]*PeakSeasonRate, error)
	// ListForStay returns rates that overlap the [from, to) night range for
	// the given room, including property-wide rates. Room-specific rates come
	// first; within each scope the most recently created rate wins.
	ListForStay(ctx context.Context, roomID, propertyID string, from, to time.Time) ([]*PeakSeasonRate, error)
	Update(ctx context.Context, r *PeakSeasonRate) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const selectRateColumns = "id, property_id, room_id, start_date, end_date, adjustment_type, adjustment_value, created_at, updated_at"

func scanRate(row pgx.Row) (*PeakSeasonRate, error) {
	var r PeakSeasonRate
	err := row.Scan(
		&r.ID, &r.PropertyID, &r.RoomID, &r.StartDate, &r.EndDate,
		&r.AdjustmentType, &r.AdjustmentValue, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *pgxRepository) Create(ctx context.Context, rate *PeakSeasonRate) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.peak_season_rates").
		Columns("property_id", "room_id", "start_date", "end_date", "adjustment_type", "adjustment_value").
		Values(rate.PropertyID, rate.RoomID, rate.StartDate, rate.EndDate, rate.AdjustmentType, rate.AdjustmentValue).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create rate query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&rate.ID, &rate.CreatedAt, &rate.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*PeakSeasonRate, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(selectRateColumns).
		From("public.peak_season_rates").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get rate query failed: %w", err)
	}

	rate, err := scanRate(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get rate failed: %w", err)
	}
	return rate, nil
}

func (r *pgxRepository) ListByProperty(ctx context.Context, propertyID string) ([]*PeakSeasonRate, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(selectRateColumns).
		From("public.peak_season_rates").
		Where(squirrel.Eq{"property_id": propertyID}).
		OrderBy("start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list rates query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list rates failed: %w", err)
	}
	defer rows.Close()

	var rates []*PeakSeasonRate
	for rows.Next() {
		rate, err := scanRate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rate failed: %w", err)
		}
		rates = append(rates, rate)
	}
	return rates, nil
}

func (r *pgxRepository) ListForStay(ctx context.Context, roomID, propertyID string, from, to time.Time) ([]*PeakSeasonRate, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	// Rates cover nights in [start_date, end_date); a rate overlaps the stay
	// when start_date < to and end_date > from.
	query, args, err := psql.Select(selectRateColumns).
		From("public.peak_season_rates").
		Where(squirrel.Eq{"property_id": propertyID}).
		Where(squirrel.Or{
			squirrel.Eq{"room_id": nil},
			squirrel.Eq{"room_id": roomID},
		}).
		Where(squirrel.Lt{"start_date": to}).
		Where(squirrel.Gt{"end_date": from}).
		OrderBy("room_id IS NULL ASC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list stay rates query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stay rates failed: %w", err)
	}
	defer rows.Close()

	var rates []*PeakSeasonRate
	for rows.Next() {
		rate, err := scanRate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rate failed: %w", err)
		}
		rates = append(rates, rate)
	}
	return rates, nil
}

func (r *pgxRepository) Update(ctx context.Context, rate *PeakSeasonRate) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.peak_season_rates").
		Set("room_id", rate.RoomID).
		Set("start_date", rate.StartDate).
		Set("end_date", rate.EndDate).
		Set("adjustment_type", rate.AdjustmentType).
		Set("adjustment_value", rate.AdjustmentValue).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": rate.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update rate query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update rate failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.peak_season_rates").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete rate query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete rate failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, rv *Review) error
	ListByProperty(ctx context.Context, propertyID string) ([]*Review, error)
	AverageRating(ctx context.Context, propertyID string) (float64, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, rv *Review) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.reviews").
		Columns("booking_id", "property_id", "user_id", "rating", "comment").
		Values(rv.BookingID, rv.PropertyID, rv.UserID, rv.Rating, rv.Comment).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create review query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&rv.ID, &rv.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrAlreadyReviewed
		}
		return fmt.Errorf("create review failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) ListByProperty(ctx context.Context, propertyID string) ([]*Review, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "booking_id", "property_id", "user_id", "rating", "comment", "created_at").
		From("public.reviews").
		Where(squirrel.Eq{"property_id": propertyID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list reviews query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews failed: %w", err)
	}
	defer rows.Close()

	var reviews []*Review
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.BookingID, &rv.PropertyID, &rv.UserID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review failed: %w", err)
		}
		reviews = append(reviews, &rv)
	}
	return reviews, nil
}

func (r *pgxRepository) AverageRating(ctx context.Context, propertyID string) (float64, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("coalesce(avg(rating), 0)", "count(*)").
		From("public.reviews").
		Where(squirrel.Eq{"property_id": propertyID}).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("build average rating query failed: %w", err)
	}

	var avg float64
	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&avg, &count); err != nil {
		return 0, 0, fmt.Errorf("average rating failed: %w", err)
	}
	return avg, count, nil
}

package report

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	SalesByMonth(ctx context.Context, ownerID string, filter SalesFilter) ([]*SalesRow, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) SalesByMonth(ctx context.Context, ownerID string, filter SalesFilter) ([]*SalesRow, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"p.id",
		"p.name",
		"date_trunc('month', b.created_at) as month",
		"count(*) as order_count",
		"sum(b.total_price) as total_revenue",
	).
		From("public.bookings b").
		Join("public.properties p ON p.id = b.property_id").
		Where(squirrel.Eq{"p.owner_id": ownerID}).
		Where(squirrel.Eq{"b.status": []string{"confirmed", "completed"}}).
		GroupBy("p.id", "p.name", "date_trunc('month', b.created_at)").
		OrderBy("month DESC", "p.name ASC")

	if filter.PropertyID != "" {
		query = query.Where(squirrel.Eq{"b.property_id": filter.PropertyID})
	}
	if !filter.From.IsZero() {
		query = query.Where(squirrel.GtOrEq{"b.created_at": filter.From})
	}
	if !filter.To.IsZero() {
		query = query.Where(squirrel.Lt{"b.created_at": filter.To})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sales report query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("sales report failed: %w", err)
	}
	defer rows.Close()

	var report []*SalesRow
	for rows.Next() {
		var row SalesRow
		if err := rows.Scan(&row.PropertyID, &row.PropertyName, &row.Month, &row.OrderCount, &row.TotalRevenue); err != nil {
			return nil, fmt.Errorf("scan sales row failed: %w", err)
		}
		report = append(report, &row)
	}
	return report, nil
}

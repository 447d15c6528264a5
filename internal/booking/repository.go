package booking

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
	// CreateWithCapacityCheck counts overlapping active bookings and inserts
	// the new one in a single transaction. Returns ErrRoomFullyBooked when
	// the room has no free unit for the range.
	CreateWithCapacityCheck(ctx context.Context, b *Booking, totalUnits int) error
	GetByUID(ctx context.Context, uid string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Update(ctx context.Context, b *Booking) error
	// UpdateStatusIf applies the given column updates only when the booking
	// is still in fromStatus. Reports whether a row was updated; false means
	// the booking was missing or already moved on.
	UpdateStatusIf(ctx context.Context, id int64, fromStatus string, set map[string]any) (bool, error)
	ListExpiredPending(ctx context.Context, now time.Time) ([]*Booking, error)
	ListUpcomingCheckIns(ctx context.Context, from, to time.Time) ([]*Booking, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const selectBookingColumns = `id, uid, room_id, property_id, user_id, check_in_date, check_out_date,
	fullname, email, phone_number, total_price, status, payment_method, payment_proof,
	transaction_id, payment_deadline, paid_at, cancellation_reason, created_at, updated_at`

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID, &b.UID, &b.RoomID, &b.PropertyID, &b.UserID, &b.CheckInDate, &b.CheckOutDate,
		&b.Fullname, &b.Email, &b.PhoneNumber, &b.TotalPrice, &b.Status, &b.PaymentMethod,
		&b.PaymentProof, &b.TransactionID, &b.PaymentDeadline, &b.PaidAt, &b.CancellationReason,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *pgxRepository) CreateWithCapacityCheck(ctx context.Context, b *Booking, totalUnits int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	countQuery, countArgs, err := psql.Select("count(*)").
		From("public.bookings").
		Where(squirrel.Eq{"room_id": b.RoomID}).
		Where(squirrel.LtOrEq{"check_in_date": b.CheckOutDate}).
		Where(squirrel.GtOrEq{"check_out_date": b.CheckInDate}).
		Where(squirrel.NotEq{"status": []string{StatusCancelled, StatusCompleted}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build overlap count query failed: %w", err)
	}

	var overlapping int
	if err := tx.QueryRow(ctx, countQuery, countArgs...).Scan(&overlapping); err != nil {
		return fmt.Errorf("count overlapping bookings failed: %w", err)
	}
	if overlapping >= totalUnits {
		return ErrRoomFullyBooked
	}

	insertQuery, insertArgs, err := psql.Insert("public.bookings").
		Columns(
			"uid", "room_id", "property_id", "user_id", "check_in_date", "check_out_date",
			"fullname", "email", "phone_number", "total_price", "status", "payment_method",
			"transaction_id", "payment_deadline",
		).
		Values(
			b.UID, b.RoomID, b.PropertyID, b.UserID, b.CheckInDate, b.CheckOutDate,
			b.Fullname, b.Email, b.PhoneNumber, b.TotalPrice, b.Status, b.PaymentMethod,
			b.TransactionID, b.PaymentDeadline,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, insertQuery, insertArgs...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *pgxRepository) GetByUID(ctx context.Context, uid string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(selectBookingColumns).
		From("public.bookings").
		Where(squirrel.Eq{"uid": uid}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		`b.id, b.uid, b.room_id, b.property_id, b.user_id, b.check_in_date, b.check_out_date,
		b.fullname, b.email, b.phone_number, b.total_price, b.status, b.payment_method, b.payment_proof,
		b.transaction_id, b.payment_deadline, b.paid_at, b.cancellation_reason, b.created_at, b.updated_at`,
		"count(*) OVER() as total_count",
	).
		From("public.bookings b")

	if filter.OwnerID != "" {
		query = query.
			Join("public.properties p ON p.id = b.property_id").
			Where(squirrel.Eq{"p.owner_id": filter.OwnerID})
	}
	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.PropertyID != "" {
		query = query.Where(squirrel.Eq{"b.property_id": filter.PropertyID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.OrderBy("b.created_at DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.UID, &b.RoomID, &b.PropertyID, &b.UserID, &b.CheckInDate, &b.CheckOutDate,
			&b.Fullname, &b.Email, &b.PhoneNumber, &b.TotalPrice, &b.Status, &b.PaymentMethod,
			&b.PaymentProof, &b.TransactionID, &b.PaymentDeadline, &b.PaidAt, &b.CancellationReason,
			&b.CreatedAt, &b.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", b.Status).
		Set("payment_proof", b.PaymentProof).
		Set("transaction_id", b.TransactionID).
		Set("payment_deadline", b.PaymentDeadline).
		Set("paid_at", b.PaidAt).
		Set("cancellation_reason", b.CancellationReason).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) UpdateStatusIf(ctx context.Context, id int64, fromStatus string, set map[string]any) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	update := psql.Update("public.bookings")
	for column, value := range set {
		update = update.Set(column, value)
	}
	query, args, err := update.
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "status": fromStatus}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build conditional update query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("conditional update booking failed: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}

func (r *pgxRepository) ListExpiredPending(ctx context.Context, now time.Time) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(selectBookingColumns).
		From("public.bookings").
		Where(squirrel.Eq{"status": StatusPendingPayment}).
		Where(squirrel.Lt{"payment_deadline": now}).
		OrderBy("payment_deadline ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build expired pending query failed: %w", err)
	}

	return r.queryBookings(ctx, query, args)
}

func (r *pgxRepository) ListUpcomingCheckIns(ctx context.Context, from, to time.Time) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(selectBookingColumns).
		From("public.bookings").
		Where(squirrel.Eq{"status": StatusConfirmed}).
		Where(squirrel.GtOrEq{"check_in_date": from}).
		Where(squirrel.Lt{"check_in_date": to}).
		OrderBy("check_in_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upcoming check-ins query failed: %w", err)
	}

	return r.queryBookings(ctx, query, args)
}

func (r *pgxRepository) queryBookings(ctx context.Context, query string, args []any) ([]*Booking, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

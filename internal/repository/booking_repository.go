package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/port-russell/marina-service/internal/domain"
)

// BookingRepository defines persistence access for reservations.
type BookingRepository interface {
	GetAll(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) error
	Update(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, id string) error
}

type bookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository returns a Postgres-backed implementation.
func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &bookingRepository{pool: pool}
}

func (r *bookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	const query = `
        SELECT id, booking_id, catway_number, client_name, boat_name, check_in, check_out
        FROM bookings ORDER BY check_in`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var booking domain.Booking
		if err := rows.Scan(
			&booking.ID,
			&booking.BookingID,
			&booking.CatwayNumber,
			&booking.ClientName,
			&booking.BoatName,
			&booking.CheckIn,
			&booking.CheckOut,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	const query = `
        SELECT id, booking_id, catway_number, client_name, boat_name, check_in, check_out
        FROM bookings WHERE id=$1`

	var booking domain.Booking
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.BookingID,
		&booking.CatwayNumber,
		&booking.ClientName,
		&booking.BoatName,
		&booking.CheckIn,
		&booking.CheckOut,
	); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	const query = `
        INSERT INTO bookings (booking_id, catway_number, client_name, boat_name, check_in, check_out)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		booking.BookingID,
		booking.CatwayNumber,
		booking.ClientName,
		booking.BoatName,
		booking.CheckIn,
		booking.CheckOut,
	).Scan(&booking.ID)
}

func (r *bookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	const query = `
        UPDATE bookings
        SET booking_id=$1, catway_number=$2, client_name=$3, boat_name=$4, check_in=$5, check_out=$6
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		booking.BookingID,
		booking.CatwayNumber,
		booking.ClientName,
		booking.BoatName,
		booking.CheckIn,
		booking.CheckOut,
		booking.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes the booking. Deleting an absent id is not an error.
func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM bookings WHERE id=$1`

	_, err := r.pool.Exec(ctx, query, id)
	return err
}

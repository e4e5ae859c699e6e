package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/port-russell/marina-service/internal/domain"
)

// errBadID stands in for the driver error a malformed uuid produces; the
// services must surface it as a store failure, not a 404.
var errBadID = errors.New("invalid input syntax for type uuid")

// FakeUserRepo is an in-memory repository.UserRepository.
type FakeUserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User
}

// NewFakeUserRepo builds an empty fake.
func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{users: make(map[string]domain.User)}
}

// Seed inserts a user directly, assigning an id when absent.
func (f *FakeUserRepo) Seed(user domain.User) domain.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	f.users[user.ID] = user
	return user
}

func (f *FakeUserRepo) GetAll(context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := make([]domain.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, user)
	}
	return users, nil
}

func (f *FakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, errBadID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (f *FakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *FakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return errors.New("duplicate key value violates unique constraint")
		}
	}
	user.ID = uuid.NewString()
	f.users[user.ID] = *user
	return nil
}

func (f *FakeUserRepo) Update(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.users[user.ID] = *user
	return nil
}

func (f *FakeUserRepo) Delete(_ context.Context, id string) error {
	if err := uuid.Validate(id); err != nil {
		return errBadID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

// FakeCatwayRepo is an in-memory repository.CatwayRepository.
type FakeCatwayRepo struct {
	mu      sync.Mutex
	order   []string
	catways map[string]domain.Catway
}

// NewFakeCatwayRepo builds an empty fake.
func NewFakeCatwayRepo() *FakeCatwayRepo {
	return &FakeCatwayRepo{catways: make(map[string]domain.Catway)}
}

// Seed inserts a catway directly, assigning an id when absent.
func (f *FakeCatwayRepo) Seed(catway domain.Catway) domain.Catway {
	f.mu.Lock()
	defer f.mu.Unlock()
	if catway.ID == "" {
		catway.ID = uuid.NewString()
	}
	f.order = append(f.order, catway.ID)
	f.catways[catway.ID] = catway
	return catway
}

func (f *FakeCatwayRepo) GetAll(context.Context) ([]domain.Catway, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	catways := make([]domain.Catway, 0, len(f.order))
	for _, id := range f.order {
		if catway, ok := f.catways[id]; ok {
			catways = append(catways, catway)
		}
	}
	return catways, nil
}

func (f *FakeCatwayRepo) GetByID(_ context.Context, id string) (*domain.Catway, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, errBadID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	catway, ok := f.catways[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &catway, nil
}

func (f *FakeCatwayRepo) GetByNumber(_ context.Context, number int) (*domain.Catway, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range f.order {
		if catway, ok := f.catways[id]; ok && catway.CatwayNumber == number {
			c := catway
			return &c, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *FakeCatwayRepo) GetFirst(context.Context) (*domain.Catway, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range f.order {
		if catway, ok := f.catways[id]; ok {
			c := catway
			return &c, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *FakeCatwayRepo) Create(_ context.Context, catway *domain.Catway) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	catway.ID = uuid.NewString()
	f.order = append(f.order, catway.ID)
	f.catways[catway.ID] = *catway
	return nil
}

func (f *FakeCatwayRepo) Update(_ context.Context, catway *domain.Catway) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.catways[catway.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.catways[catway.ID] = *catway
	return nil
}

func (f *FakeCatwayRepo) Delete(_ context.Context, id string) error {
	if err := uuid.Validate(id); err != nil {
		return errBadID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.catways, id)
	return nil
}

// FakeBookingRepo is an in-memory repository.BookingRepository.
type FakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]domain.Booking
}

// NewFakeBookingRepo builds an empty fake.
func NewFakeBookingRepo() *FakeBookingRepo {
	return &FakeBookingRepo{bookings: make(map[string]domain.Booking)}
}

// Seed inserts a booking directly, assigning an id when absent.
func (f *FakeBookingRepo) Seed(booking domain.Booking) domain.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	f.bookings[booking.ID] = booking
	return booking
}

func (f *FakeBookingRepo) GetAll(context.Context) ([]domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	bookings := make([]domain.Booking, 0, len(f.bookings))
	for _, booking := range f.bookings {
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func (f *FakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, errBadID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &booking, nil
}

func (f *FakeBookingRepo) Create(_ context.Context, booking *domain.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking.ID = uuid.NewString()
	f.bookings[booking.ID] = *booking
	return nil
}

func (f *FakeBookingRepo) Update(_ context.Context, booking *domain.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.bookings[booking.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.bookings[booking.ID] = *booking
	return nil
}

func (f *FakeBookingRepo) Delete(_ context.Context, id string) error {
	if err := uuid.Validate(id); err != nil {
		return errBadID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.bookings, id)
	return nil
}

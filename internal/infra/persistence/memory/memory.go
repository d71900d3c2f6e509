// Package memory provides an in-memory implementation of the persistence
// interfaces. It backs the use case tests and can serve as a storage driver for
// local development. A single mutex serializes writes, which also makes the
// "insert admin if none exists" path atomic, mirroring what the partial unique
// index guarantees in PostgreSQL.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"rental/internal/domain/entity"
	"rental/internal/domain/repository"

	"github.com/google/uuid"
)

// Store holds all in-memory records and implements the repository factory.
type Store struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]entity.Account
	cars     map[uuid.UUID]entity.Car
	bookings map[uuid.UUID]entity.Booking
	seq      map[uuid.UUID]int64
	nextSeq  int64
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		accounts: make(map[uuid.UUID]entity.Account),
		cars:     make(map[uuid.UUID]entity.Car),
		bookings: make(map[uuid.UUID]entity.Booking),
		seq:      make(map[uuid.UUID]int64),
	}
}

// AccountRepo returns the store's account repository view.
func (s *Store) AccountRepo() repository.AccountRepository { return (*accountRepository)(s) }

// CarRepo returns the store's car repository view.
func (s *Store) CarRepo() repository.CarRepository { return (*carRepository)(s) }

// BookingRepo returns the store's booking repository view.
func (s *Store) BookingRepo() repository.BookingRepository { return (*bookingRepository)(s) }

func (s *Store) stamp(id uuid.UUID) {
	s.nextSeq++
	s.seq[id] = s.nextSeq
}

// NewTransactionManager returns a TransactionManager over the store. The fake
// has no real transactions; Execute simply runs the callback against the store,
// whose mutex already serializes the cross-record admin invariant.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &memoryTransactionManager{store: store}
}

type memoryTransactionManager struct {
	store *Store
}

func (tm *memoryTransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(tm.store)
}

// --- Account repository ---

type accountRepository Store

func (repo *accountRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	account, ok := repo.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return &account, nil
}

func (repo *accountRepository) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, account := range repo.accounts {
		if account.Email == email {
			found := account

			return &found, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (repo *accountRepository) Create(_ context.Context, account *entity.Account) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, existing := range repo.accounts {
		if existing.Email == account.Email {
			return repository.ErrDuplicateEmail
		}
	}
	if account.Role == entity.RoleAdmin {
		for _, existing := range repo.accounts {
			if existing.Role == entity.RoleAdmin {
				return repository.ErrAdminAlreadyExists
			}
		}
	}

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}

	repo.accounts[account.ID] = *account
	(*Store)(repo).stamp(account.ID)

	return nil
}

func (repo *accountRepository) CountByRole(_ context.Context, role entity.Role) (int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	var count int64
	for _, account := range repo.accounts {
		if account.Role == role {
			count++
		}
	}

	return count, nil
}

func (repo *accountRepository) Count(_ context.Context) (int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	return int64(len(repo.accounts)), nil
}

// --- Car repository ---

type carRepository Store

func (repo *carRepository) List(_ context.Context, filter repository.CarFilter) ([]*entity.Car, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	cars := make([]*entity.Car, 0, len(repo.cars))
	for _, car := range repo.cars {
		if filter.Make != "" && !strings.Contains(strings.ToLower(car.Make), strings.ToLower(filter.Make)) {
			continue
		}
		if filter.MaxPrice > 0 && car.PricePerDay > filter.MaxPrice {
			continue
		}
		found := car
		cars = append(cars, &found)
	}

	repo.sortNewestFirst(cars)

	return cars, nil
}

func (repo *carRepository) sortNewestFirst(cars []*entity.Car) {
	sort.Slice(cars, func(i, j int) bool {
		return repo.seq[cars[i].ID] > repo.seq[cars[j].ID]
	})
}

func (repo *carRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Car, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	car, ok := repo.cars[id]
	if !ok {
		return nil, repository.ErrCarNotFound
	}

	return &car, nil
}

func (repo *carRepository) Create(_ context.Context, car *entity.Car) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if car.ID == uuid.Nil {
		car.ID = uuid.New()
	}
	if car.CreatedAt.IsZero() {
		car.CreatedAt = time.Now()
	}

	repo.cars[car.ID] = *car
	(*Store)(repo).stamp(car.ID)

	return nil
}

func (repo *carRepository) Update(_ context.Context, car *entity.Car) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	existing, ok := repo.cars[car.ID]
	if !ok {
		return repository.ErrCarNotFound
	}

	car.CreatedAt = existing.CreatedAt
	repo.cars[car.ID] = *car

	return nil
}

func (repo *carRepository) ReplaceAll(_ context.Context, cars []*entity.Car) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.cars = make(map[uuid.UUID]entity.Car, len(cars))
	repo.bookings = make(map[uuid.UUID]entity.Booking)

	for _, car := range cars {
		if car.ID == uuid.Nil {
			car.ID = uuid.New()
		}
		if car.CreatedAt.IsZero() {
			car.CreatedAt = time.Now()
		}
		repo.cars[car.ID] = *car
		(*Store)(repo).stamp(car.ID)
	}

	return nil
}

func (repo *carRepository) Count(_ context.Context) (int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	return int64(len(repo.cars)), nil
}

// --- Booking repository ---

type bookingRepository Store

func (repo *bookingRepository) Create(_ context.Context, booking *entity.Booking) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}

	stored := *booking
	stored.Car = nil // car snapshots are attached on reads
	repo.bookings[booking.ID] = stored
	(*Store)(repo).stamp(booking.ID)

	return nil
}

func (repo *bookingRepository) ListByAccount(_ context.Context, accountID uuid.UUID) ([]*entity.Booking, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	return repo.collect(func(b entity.Booking) bool { return b.AccountID == accountID }), nil
}

func (repo *bookingRepository) ListAll(_ context.Context) ([]*entity.Booking, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	return repo.collect(func(entity.Booking) bool { return true }), nil
}

func (repo *bookingRepository) collect(match func(entity.Booking) bool) []*entity.Booking {
	bookings := make([]*entity.Booking, 0, len(repo.bookings))
	for _, booking := range repo.bookings {
		if !match(booking) {
			continue
		}
		found := booking
		if car, ok := repo.cars[booking.CarID]; ok {
			carCopy := car
			found.Car = &carCopy
		}
		bookings = append(bookings, &found)
	}

	sort.Slice(bookings, func(i, j int) bool {
		return repo.seq[bookings[i].ID] > repo.seq[bookings[j].ID]
	})

	return bookings
}

func (repo *bookingRepository) Count(_ context.Context) (int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	return int64(len(repo.bookings)), nil
}

package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// Store bundles the repositories over one connection or transaction.
type Store struct {
	db *gorm.DB

	Users    *UserRepository
	Workers  *WorkerRepository
	Bookings *BookingRepository
	Reviews  *ReviewRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:       db,
		Users:    &UserRepository{db: db},
		Workers:  &WorkerRepository{db: db},
		Bookings: &BookingRepository{db: db},
		Reviews:  &ReviewRepository{db: db},
	}
}

// Transaction runs fn against a Store bound to a single transaction; any
// error from fn rolls back every write made through it.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a lower-cased LIKE pattern matching s anywhere.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

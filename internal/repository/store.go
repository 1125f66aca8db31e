package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"asq/internal/capability"
	"asq/internal/model"
)

// Store is the storage authority: it performs every capability against one
// shared database handle. Calls are serialized, so each one observes the
// effects of every call that completed before it.
type Store struct {
	mu sync.Mutex
	db *gorm.DB
}

// Ensure Store implements every capability
var _ capability.Authority = (*Store)(nil)

// NewStore wraps db. The caller keeps ownership of the underlying connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// do runs fn with exclusive access to the connection.
func (s *Store) do(ctx context.Context, fn func(db *gorm.DB) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.db.WithContext(ctx))
}

// DropTables removes every table managed by the store.
func (s *Store) DropTables(ctx context.Context) error {
	return s.do(ctx, func(db *gorm.DB) error {
		tables := []interface{}{
			&model.Answer{},
			&model.Question{},
			&model.Presentation{},
			&model.Session{},
			&model.Presenter{},
		}
		for _, table := range tables {
			if err := db.Migrator().DropTable(table); err != nil {
				return err
			}
		}
		return nil
	})
}

// translate maps driver errors onto the capability error vocabulary.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return capability.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return capability.ErrConflict
	default:
		return err
	}
}

// tableOptions returns the CREATE TABLE suffix for dialect. MySQL's default
// collations fold case and accents, so IDs would stop comparing byte for
// byte; SQLite and the others compare bytes already.
func tableOptions(dialect string) (string, bool) {
	if dialect == "mysql" {
		return "DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_bin", true
	}
	return "", false
}

func createTable[T any](ctx context.Context, s *Store, name string) error {
	err := s.do(ctx, func(db *gorm.DB) error {
		if opts, ok := tableOptions(db.Dialector.Name()); ok {
			db = db.Set("gorm:table_options", opts)
		}
		return db.AutoMigrate(new(T))
	})
	if err != nil {
		return fmt.Errorf("create %s table: %w", name, err)
	}
	return nil
}

// insertUnique creates rec unless a row matching the key condition exists.
func insertUnique[T any](db *gorm.DB, rec *T, key string, value any) error {
	var count int64
	if err := db.Model(new(T)).Where(key, value).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return capability.ErrConflict
	}
	return translate(db.Create(rec).Error)
}

func first[T any](db *gorm.DB, key string, value any) (T, error) {
	var rec T
	err := db.Where(key, value).Take(&rec).Error
	return rec, translate(err)
}

func remove[T any](db *gorm.DB, key string, value any) error {
	res := db.Where(key, value).Delete(new(T))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return capability.ErrNotFound
	}
	return nil
}

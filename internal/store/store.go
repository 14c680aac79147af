// Package store wraps a single bbolt file as a set of named, JSON-serialized
// collections. Reads fall back to a caller-provided default and writes degrade
// to a logged no-op on failure; neither ever surfaces a hard error to callers.
package store

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// Collection names. Each is one key in the collections bucket.
const (
	CollCustomers        = "customers"
	CollCart             = "cart"
	CollSelectedCustomer = "selected-customer"
	CollIngredients      = "ingredients"
	CollPurchases        = "purchases"
	CollIngredientUsage  = "ingredient-usage"
	CollSales            = "sales"
	CollProducts         = "products"
	CollProductImages    = "product-images"

	// Tombstones keep seed catalog deletions effective across the seed merge.
	CollDeletedIngredients = "deleted-ingredients"
	CollDeletedProducts    = "deleted-products"
)

var collectionsBucket = []byte("collections")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store is a synchronous local key-value store. Single-client, single-threaded
// access is assumed; there is no cross-process coordination.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the store file at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open store %s", path)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(collectionsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "init collections bucket")
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Delete removes a collection. Absence afterwards reads as the default value.
func (s *Store) Delete(key string) {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(collectionsBucket).Delete([]byte(key))
	})
	if err != nil {
		zap.L().Warn("store delete failed", zap.String("collection", key), zap.Error(err))
	}
}

// DropAll removes every collection. Used by -initdb.
func (s *Store) DropAll() {
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(collectionsBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucket(collectionsBucket)
		return err
	})
	if err != nil {
		zap.L().Error("store drop failed", zap.Error(err))
	}
}

func (s *Store) getRaw(key string) []byte {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(collectionsBucket).Get([]byte(key)); v != nil {
			raw = make([]byte, len(v))
			copy(raw, v)
		}
		return nil
	})
	if err != nil {
		zap.L().Warn("store read failed", zap.String("collection", key), zap.Error(err))
		return nil
	}
	return raw
}

func (s *Store) putRaw(key string, raw []byte) {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(collectionsBucket).Put([]byte(key), raw)
	})
	if err != nil {
		// The in-memory state proceeds without the persisted copy.
		zap.L().Warn("store write skipped", zap.String("collection", key), zap.Error(err))
	}
}

// Read returns the collection stored under key, or def when the key is absent
// or unreadable.
func Read[T any](s *Store, key string, def T) T {
	raw := s.getRaw(key)
	if raw == nil {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		zap.L().Warn("store decode failed, using default",
			zap.String("collection", key), zap.Error(err))
		return def
	}
	return v
}

// Write persists the collection under key. Failures are logged and skipped.
func Write[T any](s *Store, key string, v T) {
	raw, err := json.Marshal(v)
	if err != nil {
		zap.L().Warn("store encode failed, write skipped",
			zap.String("collection", key), zap.Error(err))
		return
	}
	s.putRaw(key, raw)
}

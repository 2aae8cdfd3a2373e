// ABOUTME: Collection-oriented local store on Badger with versioned schema.
// ABOUTME: Records are JSON values under "<collection>:<id>" keys.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	badger "github.com/dgraph-io/badger/v3"
)

// Schema history. A collection exists once the store has been opened at or
// above the version that introduced it.
const schemaVersion = 6

var collectionVersions = map[string]int{
	CollWorkouts:      1,
	CollLogs:          1,
	CollGyms:          1,
	CollProfile:       2,
	CollDailyStats:    4,
	CollWeightHistory: 4,
	CollPhotos:        4,
	CollNutritionLogs: 5,
}

// Collection names.
const (
	CollWorkouts      = "workouts"
	CollLogs          = "logs"
	CollGyms          = "gyms"
	CollProfile       = "profile"
	CollDailyStats    = "daily_stats"
	CollWeightHistory = "weight_history"
	CollPhotos        = "photos"
	CollNutritionLogs = "nutrition_logs"
)

// Collections lists every collection name, in schema order.
var Collections = []string{
	CollWorkouts, CollLogs, CollGyms, CollProfile,
	CollDailyStats, CollWeightHistory, CollPhotos, CollNutritionLogs,
}

var (
	// ErrStorageUnavailable means the underlying engine could not be opened.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrDuplicateKey means an Add targeted an existing record ID.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound is returned by the raw Get path for absent keys. Typed
	// accessors translate it into a nil record.
	ErrNotFound = errors.New("not found")

	// ErrUnknownCollection means the collection name is not part of the schema.
	ErrUnknownCollection = errors.New("unknown collection")
)

const (
	metaVersionKey   = "_meta:version"
	collectionPrefix = "_coll:"
)

// Store is a durable, collection-oriented key-value store. Construct one
// with Open and pass it to whatever needs it; there is no package-level
// handle.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the store at dir, migrates the schema to the
// current version, and seeds reference data when the seed collections are
// created for the first time. Opening an already current store is a no-op
// beyond the version check.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	s := &Store{db: db}
	created, err := s.migrate()
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate store: %w", err)
	}

	// Seed only when the reference collections were created by this
	// migration, i.e. on first-ever open.
	if created[CollWorkouts] {
		s.seed()
	}

	return s, nil
}

// Close releases the underlying engine.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates missing collections and bumps the stored schema version.
// It returns the set of collections created during this migration.
func (s *Store) migrate() (map[string]bool, error) {
	created := make(map[string]bool)

	err := s.db.Update(func(txn *badger.Txn) error {
		stored := 0
		item, err := txn.Get([]byte(metaVersionKey))
		switch {
		case err == nil:
			val, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			stored, err = strconv.Atoi(string(val))
			if err != nil {
				return fmt.Errorf("corrupt schema version %q: %w", val, err)
			}
		case errors.Is(err, badger.ErrKeyNotFound):
			// fresh store
		default:
			return err
		}

		if stored >= schemaVersion {
			return nil
		}

		for name, introduced := range collectionVersions {
			if introduced > stored {
				if err := txn.Set([]byte(collectionPrefix+name), []byte{}); err != nil {
					return err
				}
				created[name] = true
			}
		}

		return txn.Set([]byte(metaVersionKey), []byte(strconv.Itoa(schemaVersion)))
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func recordKey(collection, id string) []byte {
	return []byte(collection + ":" + id)
}

func checkCollection(collection string) error {
	if _, ok := collectionVersions[collection]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	return nil
}

// GetAll returns the raw JSON of every record in the collection. A
// collection with no records yields an empty slice, never an error.
func (s *Store) GetAll(collection string) ([][]byte, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}

	var results [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(collection + ":")
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			results = append(results, val)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get all %s: %w", collection, err)
	}
	return results, nil
}

// GetByID returns the raw JSON of one record, or ErrNotFound. Absence is a
// valid result; callers that prefer a nil record use the typed accessors.
func (s *Store) GetByID(collection, id string) ([]byte, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}

	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(recordKey(collection, id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return data, nil
}

// Add inserts a record, failing with ErrDuplicateKey if the ID exists.
func (s *Store) Add(collection, id string, record any) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal %s record: %w", collection, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		key := recordKey(collection, id)
		_, err := txn.Get(key)
		if err == nil {
			return fmt.Errorf("%w: %s/%s", ErrDuplicateKey, collection, id)
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set(key, data)
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return err
		}
		return fmt.Errorf("add %s/%s: %w", collection, id, err)
	}
	return nil
}

// Put inserts or replaces a record by ID. The whole record is written in a
// single transaction; readers see either the old or the new version.
func (s *Store) Put(collection, id string, record any) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal %s record: %w", collection, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(recordKey(collection, id), data)
	})
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", collection, id, err)
	}
	return nil
}

// Remove deletes a record by ID. Deleting an absent ID is a no-op.
func (s *Store) Remove(collection, id string) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(recordKey(collection, id))
	})
	if err != nil {
		return fmt.Errorf("remove %s/%s: %w", collection, id, err)
	}
	return nil
}

// Clear removes every record in the collection.
func (s *Store) Clear(collection string) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(collection + ":")
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		var keys [][]byte
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear %s: %w", collection, err)
	}
	return nil
}

// unmarshalAll decodes every raw record into T.
func unmarshalAll[T any](raw [][]byte) ([]*T, error) {
	out := make([]*T, 0, len(raw))
	for _, data := range raw {
		var rec T
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, err
		}
		out = append(out, &rec)
	}
	return out, nil
}

// getOne decodes a single record, mapping ErrNotFound to a nil record.
func getOne[T any](s *Store, collection, id string) (*T, error) {
	data, err := s.GetByID(collection, id)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rec T
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal %s/%s: %w", collection, id, err)
	}
	return &rec, nil
}

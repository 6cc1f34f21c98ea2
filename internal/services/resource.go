package services

import (
	"strconv"
	"time"

	"truckops-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

// Store is the repository contract the services work against. The
// MongoDB-backed repository.Repository satisfies it; tests inject fakes.
type Store[T any] interface {
	FindAll() ([]*T, error)
	Find(filter bson.M) ([]*T, error)
	FindOne(filter bson.M) (*T, error)
	Insert(record *T) (*T, error)
	Replace(filter bson.M, record *T) (*T, error)
	Delete(filter bson.M) error
	NextRecordID() (int, error)
}

// Descriptor wires one entity's shape into the generic CRUD service:
// where its key lives, whether ids are synthetic, and the hooks that
// apply defaults and derived fields at write time.
type Descriptor[T any] struct {
	// Name is the display name used in messages, e.g. "Truck".
	Name string

	// Natural-key entities.
	KeyField     string
	Key          func(*T) string
	SetKey       func(*T, string)
	NormalizeKey func(string) string

	// Synthetic-id entities.
	Sequenced bool
	RecordID  func(*T) *int

	// Prepare applies defaults and recomputes derived fields before a
	// record is stored. Runs on both create and replace.
	Prepare func(*T)

	// Timestamps exposes the record's created/updated fields.
	Timestamps func(*T) (created, updated *time.Time)
}

// Resource implements the per-entity CRUD contract: list, get, create,
// full replace and delete, keyed by natural key or synthetic id.
type Resource[T any] struct {
	store Store[T]
	desc  Descriptor[T]
}

func NewResource[T any](store Store[T], desc Descriptor[T]) *Resource[T] {
	return &Resource[T]{store: store, desc: desc}
}

// Name returns the entity's display name.
func (s *Resource[T]) Name() string { return s.desc.Name }

func (s *Resource[T]) List() ([]*T, error) {
	return s.store.FindAll()
}

func (s *Resource[T]) Get(key string) (*T, error) {
	filter, err := s.keyFilter(key)
	if err != nil {
		return nil, err
	}
	return s.store.FindOne(filter)
}

func (s *Resource[T]) Create(record *T) (*T, error) {
	s.prepare(record)

	if s.desc.Sequenced {
		id, err := s.store.NextRecordID()
		if err != nil {
			return nil, err
		}
		*s.desc.RecordID(record) = id
	} else {
		key := s.normalizeKey(s.desc.Key(record))
		s.desc.SetKey(record, key)

		existing, err := s.store.FindOne(bson.M{s.desc.KeyField: key})
		if err != nil && err != repository.ErrNotFound {
			return nil, err
		}
		if existing != nil {
			return nil, repository.ErrDuplicateKey
		}
	}

	now := time.Now()
	created, updated := s.desc.Timestamps(record)
	*created, *updated = now, now

	return s.store.Insert(record)
}

// Replace stores the record as the complete new state at the given key.
// The path key is authoritative; the body's key field is overwritten.
func (s *Resource[T]) Replace(key string, record *T) (*T, error) {
	filter, err := s.keyFilter(key)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.FindOne(filter)
	if err != nil {
		return nil, err
	}

	if s.desc.Sequenced {
		*s.desc.RecordID(record) = *s.desc.RecordID(existing)
	} else {
		s.desc.SetKey(record, s.normalizeKey(key))
	}

	s.prepare(record)

	existingCreated, _ := s.desc.Timestamps(existing)
	created, updated := s.desc.Timestamps(record)
	*created = *existingCreated
	*updated = time.Now()

	return s.store.Replace(filter, record)
}

func (s *Resource[T]) Delete(key string) error {
	filter, err := s.keyFilter(key)
	if err != nil {
		return err
	}
	return s.store.Delete(filter)
}

func (s *Resource[T]) prepare(record *T) {
	if s.desc.Prepare != nil {
		s.desc.Prepare(record)
	}
}

func (s *Resource[T]) normalizeKey(key string) string {
	if s.desc.NormalizeKey != nil {
		return s.desc.NormalizeKey(key)
	}
	return key
}

func (s *Resource[T]) keyFilter(key string) (bson.M, error) {
	if s.desc.Sequenced {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, repository.ErrInvalidKey
		}
		return bson.M{"record_id": id}, nil
	}
	return bson.M{s.desc.KeyField: s.normalizeKey(key)}, nil
}

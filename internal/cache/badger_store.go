// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package cache

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// DefaultBadgerPrefix namespaces cache keys inside a shared badger database.
const DefaultBadgerPrefix = "cache:"

// BadgerStore persists cache records in BadgerDB. Entries carry a badger TTL
// matching their expiry so value-log GC reclaims keys that are never read again.
type BadgerStore struct {
	db     *badger.DB
	prefix string
}

// NewBadgerStore wraps an open database. The caller owns db and closes it.
func NewBadgerStore(db *badger.DB, prefix string) *BadgerStore {
	if prefix == "" {
		prefix = DefaultBadgerPrefix
	}
	return &BadgerStore{db: db, prefix: prefix}
}

func (s *BadgerStore) key(k string) []byte {
	return []byte(s.prefix + k)
}

// Load implements Store.
func (s *BadgerStore) Load(key string) ([]byte, bool, error) {
	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.key(key))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("badger load %s: %w", key, err)
	}
	return out, true, nil
}

// Save implements Store.
func (s *BadgerStore) Save(key string, data []byte, expiresAt time.Time) error {
	if key == "" {
		return ErrEmptyKey
	}
	e := badger.NewEntry(s.key(key), data)
	if ttl := time.Until(expiresAt); ttl > 0 {
		e = e.WithTTL(ttl)
	}
	if err := s.db.Update(func(txn *badger.Txn) error { return txn.SetEntry(e) }); err != nil {
		return fmt.Errorf("badger save %s: %w", key, err)
	}
	return nil
}

// Remove implements Store.
func (s *BadgerStore) Remove(key string) error {
	if key == "" {
		return nil
	}
	if err := s.db.Update(func(txn *badger.Txn) error { return txn.Delete(s.key(key)) }); err != nil {
		return fmt.Errorf("badger delete %s: %w", key, err)
	}
	return nil
}

var _ Store = (*BadgerStore)(nil)

// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

const profileKeyPrefix = "profile:"

// BadgerStore persists profiles in BadgerDB, one JSON document per user.
type BadgerStore struct {
	db  *badger.DB
	now func() time.Time
}

// NewBadgerStore wraps an open database. The caller owns db.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db, now: time.Now}
}

func profileKey(userID string) []byte {
	return []byte(profileKeyPrefix + userID)
}

// Profile implements Reader.
func (s *BadgerStore) Profile(_ context.Context, userID string) (*Profile, error) {
	var p *Profile
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		p, err = readProfile(txn, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// SetPreferredGenres implements Store.
func (s *BadgerStore) SetPreferredGenres(_ context.Context, userID string, genreIDs []int) error {
	return s.modify(userID, func(p *Profile) {
		p.PreferredGenreIDs = dedupeGenres(genreIDs)
	})
}

// AppendHistory implements Store.
func (s *BadgerStore) AppendHistory(_ context.Context, userID string, entry HistoryEntry) error {
	if entry.WatchedAt.IsZero() {
		entry.WatchedAt = s.now()
	}
	return s.modify(userID, func(p *Profile) {
		p.appendHistory(entry)
	})
}

// modify applies fn to the stored profile (or a new one) in one transaction.
func (s *BadgerStore) modify(userID string, fn func(*Profile)) error {
	if userID == "" {
		return errors.New("profile: empty user id")
	}
	return s.db.Update(func(txn *badger.Txn) error {
		p, err := readProfile(txn, userID)
		if errors.Is(err, ErrNotFound) {
			p = &Profile{UserID: userID}
		} else if err != nil {
			return err
		}

		fn(p)
		p.UpdatedAt = s.now()

		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("marshal profile: %w", err)
		}
		if err := txn.Set(profileKey(userID), data); err != nil {
			return fmt.Errorf("set profile: %w", err)
		}
		return nil
	})
}

func readProfile(txn *badger.Txn, userID string) (*Profile, error) {
	item, err := txn.Get(profileKey(userID))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	var p Profile
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &p)
	}); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

var _ Store = (*BadgerStore)(nil)

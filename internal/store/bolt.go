package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	bucketAttributes = []byte("attributes")
	bucketReporting  = []byte("reporting")
)

// BoltStore implements Store using BoltDB.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens or creates a BoltDB database.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	// Create buckets
	err = db.Update(func(tx *bolt.Tx) error {
		for _, b := range [][]byte{bucketAttributes, bucketReporting} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func bucket(tx *bolt.Tx, name []byte) (*bolt.Bucket, error) {
	b := tx.Bucket(name)
	if b == nil {
		return nil, fmt.Errorf("bucket %q not found", name)
	}
	return b, nil
}

func putJSON(b *bolt.Bucket, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return b.Put(key, data)
}

func (s *BoltStore) SaveAttribute(rec *Attribute) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketAttributes)
		if err != nil {
			return err
		}
		return putJSON(b, rec.Key.bytes(), rec)
	})
}

func (s *BoltStore) GetAttribute(key Key) (*Attribute, error) {
	var rec Attribute
	err := s.db.View(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketAttributes)
		if err != nil {
			return err
		}
		data := b.Get(key.bytes())
		if data == nil {
			return fmt.Errorf("attribute %s: %w", key.bytes(), ErrNotFound)
		}
		return json.Unmarshal(data, &rec)
	})
	if err != nil {
		return nil, err
	}
	rec.Key = key
	return &rec, nil
}

func (s *BoltStore) DeleteAttribute(key Key) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketAttributes)
		if err != nil {
			return err
		}
		return b.Delete(key.bytes())
	})
}

func (s *BoltStore) ListAttributes(endpoint uint8, cluster string) ([]*Attribute, error) {
	prefix := clusterPrefix(endpoint, cluster)
	var attrs []*Attribute
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketAttributes)
		if b == nil {
			return nil // no bucket = no attributes
		}
		c := b.Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var rec Attribute
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			rec.Key = Key{Endpoint: endpoint, Cluster: cluster, Attribute: strings.TrimPrefix(string(k), string(prefix))}
			attrs = append(attrs, &rec)
		}
		return nil
	})
	return attrs, err
}

func (s *BoltStore) UpdateAttribute(key Key, fn func(rec *Attribute) (*Attribute, error)) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketAttributes)
		if err != nil {
			return err
		}
		var cur *Attribute
		if data := b.Get(key.bytes()); data != nil {
			cur = &Attribute{}
			if err := json.Unmarshal(data, cur); err != nil {
				return err
			}
			cur.Key = key
		}
		next, err := fn(cur)
		if err != nil {
			return err
		}
		if next == nil {
			return b.Delete(key.bytes())
		}
		return putJSON(b, key.bytes(), next)
	})
}

func (s *BoltStore) SaveReporting(rec *Reporting) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketReporting)
		if err != nil {
			return err
		}
		return putJSON(b, rec.Key.bytes(), rec)
	})
}

func (s *BoltStore) GetReporting(key Key) (*Reporting, error) {
	var rec Reporting
	err := s.db.View(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketReporting)
		if err != nil {
			return err
		}
		data := b.Get(key.bytes())
		if data == nil {
			return fmt.Errorf("reporting %s: %w", key.bytes(), ErrNotFound)
		}
		return json.Unmarshal(data, &rec)
	})
	if err != nil {
		return nil, err
	}
	rec.Key = key
	return &rec, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Package store persists attribute values and reporting configuration of
// the server-side clusters a node hosts.
package store

import "errors"

// ErrNotFound is returned when a requested entity does not exist in the store.
var ErrNotFound = errors.New("not found")

// Store defines the persistence interface.
type Store interface {
	// Attribute values
	SaveAttribute(rec *Attribute) error
	GetAttribute(key Key) (*Attribute, error)
	DeleteAttribute(key Key) error
	// ListAttributes returns the attributes of one cluster instance.
	ListAttributes(endpoint uint8, cluster string) ([]*Attribute, error)

	// UpdateAttribute atomically reads, modifies, and saves an attribute in
	// a single transaction. fn receives nil when the attribute is not stored.
	UpdateAttribute(key Key, fn func(rec *Attribute) (*Attribute, error)) error

	// Reporting configuration
	SaveReporting(rec *Reporting) error
	GetReporting(key Key) (*Reporting, error)

	// Close the store
	Close() error
}

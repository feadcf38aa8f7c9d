// Package repositories implements the four document collections backing the
// storefront: accounts, products, orders, and reviews. Each store wraps a
// mongo collection with the handful of operations the services need; there
// are no joins and no cross-collection transactions.
package repositories

import "errors"

// Storage failure kinds. Services propagate these; controllers map them to
// transport status codes with errors.Is.
var (
	// ErrNotFound reports a point lookup that matched no document.
	ErrNotFound = errors.New("repositories: not found")
	// ErrDuplicateKey reports an insert rejected by a unique index
	// (account email collisions).
	ErrDuplicateKey = errors.New("repositories: duplicate key")
)

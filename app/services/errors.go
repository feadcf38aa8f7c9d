// Package services holds the storefront's business logic: authentication and
// access control, catalog management, order placement and tracking, reviews,
// and dashboard stats. Services validate every invariant before touching
// storage, so invalid input never reaches a collection.
package services

import "errors"

// Failure kinds surfaced to the transport layer, alongside the storage kinds
// in app/repositories. Controllers map each to a status code via errors.Is.
var (
	// ErrUnauthenticated reports a missing, malformed, expired, or
	// unsignable token, or a token referencing a since-removed account.
	ErrUnauthenticated = errors.New("services: unauthenticated")
	// ErrForbidden reports an authenticated caller with the wrong role, or
	// one reaching for another account's order.
	ErrForbidden = errors.New("services: forbidden")
	// ErrInvalidInput reports a semantic violation caught before any store
	// mutation: rating outside 1-5, unknown enumeration value, negative
	// price, empty order.
	ErrInvalidInput = errors.New("services: invalid input")
)

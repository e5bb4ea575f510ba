// Package store is the repository layer: every cross-entity read assembles
// referenced catalog entries by identity instead of trusting denormalized
// copies.
package store

import "errors"

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrDuplicatePayment = errors.New("an order already exists for this payment")
)

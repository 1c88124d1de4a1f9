package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the notifier pipeline.
var (
	// ErrInvalidCriteria indicates the search criteria failed validation.
	// This is a configuration-time failure: nothing runs after it.
	ErrInvalidCriteria = errors.New("invalid search criteria")

	// ErrInvalidOffer indicates a provider-returned offer violated the
	// expected data shape (missing field or non-nonstop itinerary).
	ErrInvalidOffer = errors.New("invalid offer")

	// ErrProviderUnavailable indicates the provider could not be reached.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// ProviderError indicates a single pair query was rejected or failed.
// It is recovered per pair by the executor and never aborts the run.
type ProviderError struct {
	// Pair is the (origin, destination) combination that failed.
	Pair PairQuery

	// Err is the underlying cause.
	Err error

	// Retryable indicates whether retrying the same query may succeed.
	Retryable bool
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider query %s failed: %v", e.Pair, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a non-retryable provider error for a pair.
func NewProviderError(pair PairQuery, err error) *ProviderError {
	return &ProviderError{Pair: pair, Err: err, Retryable: false}
}

// NewRetryableProviderError creates a retryable provider error for a pair.
func NewRetryableProviderError(pair PairQuery, err error) *ProviderError {
	return &ProviderError{Pair: pair, Err: err, Retryable: true}
}

// DeliveryError indicates the notifier failed to deliver the message.
// It is recovered at the orchestrator boundary and never aborts the process.
type DeliveryError struct {
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *DeliveryError) Error() string {
	return fmt.Sprintf("notification delivery failed: %v", e.Err)
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// NewDeliveryError wraps a transport failure as a DeliveryError.
func NewDeliveryError(err error) *DeliveryError {
	return &DeliveryError{Err: err}
}

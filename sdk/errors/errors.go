package sdkerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAddress is matched by every InvalidAddressError.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidAmount is matched by every InvalidAmountError.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAmountOutOfRange is matched by every AmountOutOfRangeError.
	ErrAmountOutOfRange = errors.New("amount out of range")
)

// InvalidAddressError is returned when a textual or encoded address does not decode to the
// number of bytes its chain expects.
type InvalidAddressError struct {
	Address  string
	Expected int
	Reason   string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid address %q: %s (expected %d bytes)", e.Address, e.Reason, e.Expected)
}

func (e *InvalidAddressError) Is(target error) bool {
	return target == ErrInvalidAddress
}

func NewInvalidAddressError(address string, expected int, reason string) *InvalidAddressError {
	return &InvalidAddressError{Address: address, Expected: expected, Reason: reason}
}

// InvalidAmountError is returned when an amount string cannot be parsed into a positive integer.
type InvalidAmountError struct {
	Amount string
	Reason string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %q: %s", e.Amount, e.Reason)
}

func (e *InvalidAmountError) Is(target error) bool {
	return target == ErrInvalidAmount
}

func NewInvalidAmountError(amount, reason string) *InvalidAmountError {
	return &InvalidAmountError{Amount: amount, Reason: reason}
}

// AmountOutOfRangeError is returned when an amount does not fit the chain's u64 encoding.
type AmountOutOfRangeError struct {
	Amount string
}

func (e *AmountOutOfRangeError) Error() string {
	return fmt.Sprintf("amount %s does not fit in an unsigned 64-bit integer", e.Amount)
}

func (e *AmountOutOfRangeError) Is(target error) bool {
	return target == ErrAmountOutOfRange
}

func NewAmountOutOfRangeError(amount string) *AmountOutOfRangeError {
	return &AmountOutOfRangeError{Amount: amount}
}

// ObjectLookupFailedError is returned when the object chain cannot resolve an object.
type ObjectLookupFailedError struct {
	ObjectID string
	Err      error
}

func (e *ObjectLookupFailedError) Error() string {
	return fmt.Sprintf("failed to look up object %s: %v", e.ObjectID, e.Err)
}

func (e *ObjectLookupFailedError) Unwrap() error {
	return e.Err
}

func NewObjectLookupFailedError(objectID string, err error) *ObjectLookupFailedError {
	return &ObjectLookupFailedError{ObjectID: objectID, Err: err}
}

// TypeMismatchError is returned when an object's runtime type differs from the expected coin type.
type TypeMismatchError struct {
	ObjectID string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("object %s has type %s, expected %s", e.ObjectID, e.Actual, e.Expected)
}

func NewTypeMismatchError(objectID, expected, actual string) *TypeMismatchError {
	return &TypeMismatchError{ObjectID: objectID, Expected: expected, Actual: actual}
}

// OwnershipMismatchError is returned when an object is not owned by the expected address.
// Actual is empty when the object has no single address owner.
type OwnershipMismatchError struct {
	ObjectID string
	Expected string
	Actual   string
}

func (e *OwnershipMismatchError) Error() string {
	actual := e.Actual
	if actual == "" {
		actual = "<not address-owned>"
	}

	return fmt.Sprintf("object %s is owned by %s, expected %s", e.ObjectID, actual, e.Expected)
}

func NewOwnershipMismatchError(objectID, expected, actual string) *OwnershipMismatchError {
	return &OwnershipMismatchError{ObjectID: objectID, Expected: expected, Actual: actual}
}

// ChainError wraps an opaque failure reported by a chain collaborator: a rejected signature,
// an RPC failure, a reverted or aborted program call.
type ChainError struct {
	Chain     string
	Operation string
	Err       error
}

func (e *ChainError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Chain, e.Operation, e.Err)
}

func (e *ChainError) Unwrap() error {
	return e.Err
}

func NewChainError(chain, operation string, err error) *ChainError {
	return &ChainError{Chain: chain, Operation: operation, Err: err}
}

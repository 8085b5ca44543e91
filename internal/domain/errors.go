package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned for an unknown username or a wrong password
var ErrInvalidCredentials = errors.New("incorrect username or password")

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ValidationError covers malformed or contradictory input
type ValidationError struct {
	Field string
	Msg   string
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

// CapacityError is returned when a booking asks for more guests than the room holds
type CapacityError struct {
	Guests   int
	Capacity int
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("Number of guests (%d) exceeds room capacity (%d). Consider booking an additional room or choosing a larger one.", e.Guests, e.Capacity)
}

// ConflictError covers overlapping bookings, inverted date pairs and rows still referenced
type ConflictError struct {
	Resource string
	Msg      string
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

// InternalError wraps a persistence failure; only Msg is safe to show clients
type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

// MsgDateOrder is the message used whenever check-out is not after check-in
const MsgDateOrder = "Check-out date must be after check-in date"

// MsgRoomUnavailable is the message for an overlapping booking
const MsgRoomUnavailable = "The room is not available for the selected dates."

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsCapacity(err error) bool {
	var target CapacityError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

package biddingerrors

import (
	"errors"
	"fmt"
)

// Repository-level errors
var (
	ErrSlotEmpty      = errors.New("session slot is empty")
	ErrSlotUnreadable = errors.New("session storage is unreadable")
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRegistrationFailed = errors.New("registration failed")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

// Bid policy errors, resolved before any gateway call
var (
	ErrNotPositive     = errors.New("bid amount must be positive")
	ErrBidTooLow       = errors.New("bid amount too low")
	ErrAuctionClosed   = errors.New("auction is closed")
	ErrOwnerCannotBid  = errors.New("owner cannot bid on own auction")
	ErrAlreadyBid      = errors.New("viewer already has an active bid")
	ErrNoBidToWithdraw = errors.New("viewer has no bid to withdraw")
)

// Listing errors
var (
	ErrInvalidDraft = errors.New("invalid auction draft")
	ErrNotOwner     = errors.New("only the auction owner can do this")
)

// Sandbox gateway errors
var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrUnknownToken    = errors.New("unknown or expired token")
	ErrAuctionNotFound = errors.New("auction not found")
)

// Gateway errors
var (
	ErrGatewayStatus      = errors.New("gateway returned an error status")
	ErrGatewayUnreachable = errors.New("gateway unreachable")
	ErrMalformedResponse  = errors.New("malformed gateway response")
	ErrUnauthorized       = errors.New("credential rejected by gateway")
)

// GatewayKind classifies a gateway failure
type GatewayKind int

const (
	KindStatus GatewayKind = iota
	KindUnreachable
	KindMalformed
	KindUnauthorized
)

func (k GatewayKind) sentinel() error {
	switch k {
	case KindUnreachable:
		return ErrGatewayUnreachable
	case KindMalformed:
		return ErrMalformedResponse
	case KindUnauthorized:
		return ErrUnauthorized
	default:
		return ErrGatewayStatus
	}
}

// GatewayError describes a failed gateway call.
// Message is the server-supplied message when there was one.
type GatewayError struct {
	Op         string
	Kind       GatewayKind
	StatusCode int
	Message    string
	Err        error
}

func (e *GatewayError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.sentinel().Error()
		if e.Err != nil {
			msg += ": " + e.Err.Error()
		}
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("gateway %s: %s (status %d)", e.Op, msg, e.StatusCode)
	}
	return fmt.Sprintf("gateway %s: %s", e.Op, msg)
}

// Is matches the sentinel for the error kind
func (e *GatewayError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// AuthError is returned by sign-in and sign-up. Message is safe to show to the user.
type AuthError struct {
	Op      string
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// UserMessage extracts the message to present for err: the server-supplied
// message when one exists, otherwise fallback.
func UserMessage(err error, fallback string) string {
	var authErr *AuthError
	if errors.As(err, &authErr) && authErr.Message != "" {
		return authErr.Message
	}
	var gwErr *GatewayError
	if errors.As(err, &gwErr) && gwErr.Message != "" {
		return gwErr.Message
	}
	return fallback
}

package models

import "errors"

var (
	// ErrSessionExpired means the session token is invalid or expired;
	// callers must re-prompt authentication, not retry.
	ErrSessionExpired = errors.New("session expired")
	// ErrOwnershipViolation means the acting principal does not own the
	// referenced record. Indicates a forged or stale request.
	ErrOwnershipViolation = errors.New("ownership violation")
	// ErrTargetUnavailable means the referenced vendor or venue is not
	// approved (or no longer exists).
	ErrTargetUnavailable = errors.New("target unavailable")
	// ErrValidation means the payload is client-correctable and must not
	// reach the store.
	ErrValidation = errors.New("validation error")
	// ErrInvalidTransition means the requested status change is not a legal
	// transition from the record's current status.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrStaleStatus means a concurrent transition already moved the record
	// out of pending; the caller holds stale state.
	ErrStaleStatus = errors.New("stale status")
)

var (
	ErrNotFound = errors.New("not found")
	// ErrStoreUnavailable is a transient backend failure; safe to retry with
	// backoff, though this service does not retry on the caller's behalf.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrConstraintViolation is a permanent failure for the given payload.
	ErrConstraintViolation = errors.New("constraint violation")
)

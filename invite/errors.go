package invite

import (
	"context"
	"errors"

	errorslib "github.com/goliatone/go-errors"
)

// ErrorKind defines invite error kinds.
type ErrorKind string

const (
	KindValidation      ErrorKind = "validation"
	KindMissingField    ErrorKind = "missing_field"
	KindUnknownTemplate ErrorKind = "unknown_template"
	KindAsset           ErrorKind = "asset_unavailable"
	KindBackend         ErrorKind = "render_backend"
	KindDecode          ErrorKind = "payload_decode"
	KindTimeout         ErrorKind = "timeout"
	KindCanceled        ErrorKind = "canceled"
	KindInternal        ErrorKind = "internal"
)

// InviteError wraps errors with a kind.
type InviteError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *InviteError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *InviteError) Unwrap() error {
	return e.Err
}

// NewError creates a new invite error.
func NewError(kind ErrorKind, msg string, err error) *InviteError {
	return &InviteError{Kind: kind, Msg: msg, Err: err}
}

// AsGoError maps an error into a go-errors error.
func AsGoError(err error) *errorslib.Error {
	if err == nil {
		return nil
	}

	var ge *errorslib.Error
	if errors.As(err, &ge) {
		return ge
	}

	kind := KindInternal
	msg := err.Error()

	var inviteErr *InviteError
	if errors.As(err, &inviteErr) {
		kind = inviteErr.Kind
		if inviteErr.Msg != "" {
			msg = inviteErr.Msg
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		kind = KindTimeout
	}
	if errors.Is(err, context.Canceled) {
		kind = KindCanceled
	}

	switch kind {
	case KindValidation:
		return errorslib.New(msg, errorslib.CategoryValidation).WithTextCode("validation")
	case KindMissingField:
		return errorslib.New(msg, errorslib.CategoryValidation).WithTextCode("missing_field")
	case KindUnknownTemplate:
		return errorslib.New(msg, errorslib.CategoryNotFound).WithTextCode("unknown_template")
	case KindAsset:
		return errorslib.New(msg, errorslib.CategoryInternal).WithTextCode("asset_unavailable")
	case KindBackend:
		return errorslib.New(msg, errorslib.CategoryInternal).WithTextCode("render_backend")
	case KindDecode:
		return errorslib.New(msg, errorslib.CategoryOperation).WithTextCode("payload_decode")
	case KindTimeout:
		return errorslib.New(msg, errorslib.CategoryOperation).WithTextCode("timeout")
	case KindCanceled:
		return errorslib.New(msg, errorslib.CategoryOperation).WithTextCode("canceled")
	default:
		return errorslib.New(msg, errorslib.CategoryInternal).WithTextCode("internal")
	}
}

// KindFromError maps an error to its invite error kind.
func KindFromError(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var inviteErr *InviteError
	if errors.As(err, &inviteErr) {
		return inviteErr.Kind
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	if errors.Is(err, context.Canceled) {
		return KindCanceled
	}

	return KindInternal
}

package engine

import "errors"

// Kind tags every error the engine can surface so callers dispatch on the
// rule that failed instead of string-matching messages.
type Kind string

const (
	KindNotFound           Kind = "not_found"
	KindValidation         Kind = "validation"
	KindStockUnavailable   Kind = "stock_unavailable"
	KindDebtLimitExceeded  Kind = "debt_limit_exceeded"
	KindAlreadyReturned    Kind = "already_returned"
	KindHasActiveLoan      Kind = "has_active_loan"
	KindHasOutstandingDebt Kind = "has_outstanding_debt"
	KindStorage            Kind = "storage"
	KindUpstream           Kind = "upstream"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func E(kind Kind, msg string) *Error { return &Error{Kind: kind, Message: msg} }

// Storage wraps a persistence failure; the triggering operation has been
// rolled back in full by the time this is returned.
func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Message: "storage error: " + err.Error(), Err: err}
}

func Upstream(err error) *Error {
	return &Error{Kind: KindUpstream, Message: "catalog service error: " + err.Error(), Err: err}
}

// KindOf extracts the kind from any error in the chain; unrecognized
// errors count as storage failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

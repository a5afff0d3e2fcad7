package core

import "errors"

var (
	// ErrNotFound is returned when no row matches a given id under the
	// calling principal. Rows that exist under a different principal are
	// reported with the same error so callers cannot probe for existence.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition is returned when an action is applied to a widget
	// whose current state variant does not permit it. The handler aborts
	// before any event is emitted or persisted.
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrUnhandledVariant signals a gap between the registered action catalog
	// and the machine's dispatch table. It is unreachable in a correct build;
	// the exhaustiveness tests walk the registry to keep it that way.
	ErrUnhandledVariant = errors.New("unhandled action variant")
)

package events

import "errors"

var (
	// ErrSourceNil is returned by NewManager when no Source is given.
	ErrSourceNil = errors.New("event source cannot be nil")

	// ErrCallbackNil is returned when a nil callback is registered.
	ErrCallbackNil = errors.New("callback cannot be nil")

	// ErrKindOutOfRange is returned when a kind does not belong to the manager's taxonomy.
	ErrKindOutOfRange = errors.New("event kind out of range")

	// ErrAttachFailed wraps the error a Source returned from Attach.
	ErrAttachFailed = errors.New("event attach failed")

	// ErrManagerClosed is returned when registering on a closed manager.
	ErrManagerClosed = errors.New("event manager closed")

	// ErrPayloadMismatch is reported when a delivered payload does not have the
	// type the kind declares. The delivery is dropped.
	ErrPayloadMismatch = errors.New("event payload mismatch")
)

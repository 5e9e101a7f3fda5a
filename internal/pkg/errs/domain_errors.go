package errs

// Error classes surfaced by the use case layer. Specific failures are marked
// with exactly one class so transport adapters only need to know this list.
var (
	// Persistence failure; safe to retry
	ErrStoreUnavailable = New("store unavailable")

	// Booking conflict on (date, time)
	ErrSlotUnavailable = New("slot unavailable")

	// Cancellation preconditions
	ErrNotFound         = New("not found")
	ErrForbidden        = New("forbidden")
	ErrAlreadyCancelled = New("already cancelled")

	// Malformed date, time or identity input
	ErrValidation = New("validation error")

	// A stored row no longer decodes into the domain; retrying will not help
	ErrCorruptData = New("corrupt stored data")
)

var classes = []error{
	ErrStoreUnavailable,
	ErrSlotUnavailable,
	ErrNotFound,
	ErrForbidden,
	ErrAlreadyCancelled,
	ErrValidation,
	ErrCorruptData,
}

// Classified reports whether err already carries one of the error classes.
func Classified(err error) bool {
	for _, c := range classes {
		if Is(err, c) {
			return true
		}
	}
	return false
}

// OrUnavailable leaves classified errors alone and marks everything else as a
// store failure.
func OrUnavailable(err error) error {
	if err == nil || Classified(err) {
		return err
	}
	return Mark(err, ErrStoreUnavailable)
}

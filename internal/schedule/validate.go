package schedule

import "time"

// ValidationError reports a syntactically valid pickup time that fails a
// business rule. The reason is suitable for direct display.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ValidatePickup confirms that candidate is an acceptable pickup time given
// the current time, an optional minTime floor (editing an existing order) and
// the business hours. It is idempotent and side-effect free, so callers run
// it on every keystroke and again at final submission.
func ValidatePickup(candidate, now, minTime time.Time, hours BusinessHours, step time.Duration) error {
	if !SameDay(candidate, now) {
		return &ValidationError{Reason: "pickup must be scheduled for today"}
	}
	if hours.Outside(candidate) {
		return &ValidationError{Reason: "pickup time is outside business hours"}
	}

	slots := Slots(now, minTime, hours, step)
	if len(slots) == 0 {
		return &ValidationError{Reason: "no pickup times remaining today"}
	}
	if candidate.Before(slots[0]) {
		return &ValidationError{Reason: "pickup time is earlier than the first available slot"}
	}
	return nil
}

package schedule

import "time"

// DefaultSlotInterval is the pickup slot granularity used when the
// configuration does not override it.
const DefaultSlotInterval = 15 * time.Minute

// Slots returns the ascending sequence of offerable pickup times on now's
// calendar day. Candidate times form a grid of step intervals starting at the
// opening time; the result begins at the first grid point at or after
// max(now, open) and ends strictly before close. A non-zero minTime replaces
// now as the lower bound, which callers use when editing an existing order.
//
// An empty result means the shop has no pickup times left today. Slots is a
// pure function of its arguments; "now" is always passed in explicitly.
func Slots(now, minTime time.Time, hours BusinessHours, step time.Duration) []time.Time {
	if step <= 0 {
		step = DefaultSlotInterval
	}

	base := now
	if !minTime.IsZero() {
		base = minTime
	}

	open := hours.OpenAt(now)
	closing := hours.CloseAt(now)
	if base.Before(open) {
		base = open
	}
	if !base.Before(closing) {
		return nil
	}

	// Align up to the next step boundary. The grid is anchored at the opening
	// instant, so the first slot of an unconstrained day is always open itself.
	if rem := base.Sub(open) % step; rem != 0 {
		base = base.Add(step - rem)
	}

	var slots []time.Time
	for t := base; t.Before(closing); t = t.Add(step) {
		slots = append(slots, t)
	}
	return slots
}

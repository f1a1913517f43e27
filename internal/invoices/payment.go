package invoices

import "time"

// NextPaidDate returns the paid date an invoice should carry after an update
// setting its paid flag to paid.
//
// Marking an unpaid invoice as paid stamps now. Marking any invoice unpaid
// clears the date. An invoice that is already paid and stays paid keeps its
// original date.
func NextPaidDate(current *time.Time, paid bool, now time.Time) *time.Time {
	switch {
	case paid && current == nil:
		return &now
	case !paid:
		return nil
	default:
		return current
	}
}

package models

import (
	"time"
)

// Visible reports whether the offer may appear in the public listing at the
// given instant. An absent bound is unbounded on that side; both bounds are
// inclusive, so an offer surfaces exactly at StartAt and stays listed through
// EndAt. An inverted window (StartAt after EndAt) is evaluated literally and
// never matches; it is accepted at write time, not rejected.
func Visible(o Offer, now time.Time) bool {
	if !o.IsActive {
		return false
	}
	if o.StartAt != nil && o.StartAt.After(now) {
		return false
	}
	if o.EndAt != nil && o.EndAt.Before(now) {
		return false
	}
	return true
}

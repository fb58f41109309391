package service

import "time"

// SetAuthClock pins the clock used for issuing and validating tokens.
func SetAuthClock(s AuthService, now func() time.Time) {
	if as, ok := s.(*authService); ok {
		as.now = now
	}
}

// SetRatelimitClock pins the clock used to compute purge cutoffs.
func SetRatelimitClock(s RatelimitService, now func() time.Time) {
	if rs, ok := s.(*ratelimitService); ok {
		rs.now = now
	}
}

package recipe

import "time"

// SetClock replaces the time source used for recipe timestamps.
func (s *Store) SetClock(now func() time.Time) { s.now = now }

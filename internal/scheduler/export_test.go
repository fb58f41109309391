package scheduler

func (s *Scheduler) Purge() { s.purge() }

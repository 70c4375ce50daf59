package ratelimit

import "time"

func (l *MemoryLimiter) SetClock(now func() time.Time) {
	l.now = now
}

func (l *MemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

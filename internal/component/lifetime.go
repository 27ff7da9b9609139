package component

import "time"

// TTL counts down to automatic removal of its entity.
type TTL struct {
	Remaining time.Duration
}

func (TTL) Tag() Tag { return TagTTL }

package entity

import (
	"time"

	"github.com/sanjanb/k-tech-nain/internal/domain/value"
)

// User is consumed read-only by this service; accounts are provisioned by
// the upstream identity provider.
type User struct {
	ID        string
	Name      string
	Email     string // optional, missing email blocks EMAIL delivery
	Role      value.Role
	Language  value.Language
	UpiID     string // optional
	Verified  bool
	CreatedAt time.Time
}

// HasContactFor reports whether the user has a deliverable address for the
// given channel.
func (u User) HasContactFor(channel Channel) bool {
	switch channel {
	case ChannelEmail:
		return u.Email != ""
	default:
		return false
	}
}

package config

import (
	"slices"

	"github.com/gotd/td/tg"
)

// Roster maps both peer identities of every tracked user to that user.
// It is built once per loaded Config and only read afterwards.
type Roster map[PeerID]TrackedUser

// BuildRoster indexes users by their user and chat identities. When two
// entries produce the same identity the later one wins.
func BuildRoster(users []TrackedUser) Roster {
	roster := make(Roster, len(users)*2)
	for _, u := range users {
		roster[u.UserPeer()] = u
		roster[u.ChatPeer()] = u
	}
	return roster
}

// Roster builds the roster for c.Users.
func (c *Config) Roster() Roster {
	return BuildRoster(c.Users)
}

// Lookup returns the tracked user configured for peer.
func (r Roster) Lookup(peer PeerID) (TrackedUser, bool) {
	u, ok := r[peer]
	return u, ok
}

// LookupTG is Lookup for an MTProto peer.
func (r Roster) LookupTG(peer tg.PeerClass) (TrackedUser, bool) {
	id, ok := PeerFromTG(peer)
	if !ok {
		return TrackedUser{}, false
	}
	return r.Lookup(id)
}

// DuplicateUserIDs returns, in ascending order, the ids declared by more than
// one entry of users.
func DuplicateUserIDs(users []TrackedUser) []int64 {
	seen := make(map[int64]int, len(users))
	for _, u := range users {
		seen[u.ID]++
	}

	var dups []int64
	for id, n := range seen {
		if n > 1 {
			dups = append(dups, id)
		}
	}
	slices.Sort(dups)
	return dups
}

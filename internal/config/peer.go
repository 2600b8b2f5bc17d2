package config

import (
	"fmt"

	"github.com/gotd/td/tg"
)

// PeerKind distinguishes the conversation contexts a numeric id can name.
type PeerKind uint8

const (
	// PeerKindUser is a one-to-one conversation with a user.
	PeerKindUser PeerKind = iota + 1
	// PeerKindChat is a basic group chat.
	PeerKindChat
)

func (k PeerKind) String() string {
	switch k {
	case PeerKindUser:
		return "user"
	case PeerKindChat:
		return "chat"
	default:
		return fmt.Sprintf("PeerKind(%d)", uint8(k))
	}
}

// PeerID is a comparable peer identity, usable as a map key.
type PeerID struct {
	Kind PeerKind
	ID   int64
}

// UserPeer returns the direct-conversation identity for id.
func UserPeer(id int64) PeerID {
	return PeerID{Kind: PeerKindUser, ID: id}
}

// ChatPeer returns the group-conversation identity for id.
func ChatPeer(id int64) PeerID {
	return PeerID{Kind: PeerKindChat, ID: id}
}

func (p PeerID) String() string {
	return fmt.Sprintf("%s:%d", p.Kind, p.ID)
}

// TG converts p to the MTProto peer type. It returns nil for an unknown kind.
func (p PeerID) TG() tg.PeerClass {
	switch p.Kind {
	case PeerKindUser:
		return &tg.PeerUser{UserID: p.ID}
	case PeerKindChat:
		return &tg.PeerChat{ChatID: p.ID}
	default:
		return nil
	}
}

// PeerFromTG converts an MTProto peer (for example msg.PeerID or
// msg.FromID) to a PeerID. Channels and nil peers are not tracked.
func PeerFromTG(peer tg.PeerClass) (PeerID, bool) {
	switch p := peer.(type) {
	case *tg.PeerUser:
		return UserPeer(p.UserID), true
	case *tg.PeerChat:
		return ChatPeer(p.ChatID), true
	default:
		return PeerID{}, false
	}
}

package config

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/lanrat/bgpexplorer/src/internal/whois"
)

// PeerMode selects the session protocol (BGP or BMP) and which side is
// expected to open the transport connection.
type PeerMode int

const (
	// BgpActive runs a BGP session that the service initiates.
	BgpActive PeerMode = iota
	// BgpPassive runs a BGP session initiated by the remote router.
	BgpPassive
	// BmpPassive accepts a BMP feed initiated by the remote router.
	BmpPassive
	// BmpActive connects out to a BMP station.
	BmpActive
)

// ParsePeerMode matches the first space-separated token of s against the
// mode vocabulary. Anything after the first token is ignored.
func ParsePeerMode(s string) (PeerMode, error) {
	switch strings.Split(s, " ")[0] {
	case "bgpactive":
		return BgpActive, nil
	case "bgppassive":
		return BgpPassive, nil
	case "bmppassive":
		return BmpPassive, nil
	case "bmpactive":
		return BmpActive, nil
	default:
		return 0, errors.New("invalid mode")
	}
}

func (m PeerMode) String() string {
	switch m {
	case BgpActive:
		return "bgpactive"
	case BgpPassive:
		return "bgppassive"
	case BmpPassive:
		return "bmppassive"
	case BmpActive:
		return "bmpactive"
	default:
		return fmt.Sprintf("PeerMode(%d)", int(m))
	}
}

// requiresBGPPeer reports whether the mode needs a remote BGP endpoint.
func (m PeerMode) requiresBGPPeer() bool { return m == BgpActive }

// requiresBMPPeer reports whether the mode needs a remote BMP endpoint.
func (m PeerMode) requiresBMPPeer() bool { return m == BmpActive }

// requiresListener reports whether the mode needs a local protocol listener.
func (m PeerMode) requiresListener() bool { return m == BgpPassive || m == BmpPassive }

// HistoryChangeMode controls which route updates produce a history record.
type HistoryChangeMode int

const (
	// EveryUpdate records every received update.
	EveryUpdate HistoryChangeMode = iota
	// OnlyDiffer records an update only when it differs from the
	// previously stored state.
	OnlyDiffer
)

// ParseHistoryMode matches the first space-separated token of s against
// "every" or "differ".
func ParseHistoryMode(s string) (HistoryChangeMode, error) {
	switch strings.Split(s, " ")[0] {
	case "every":
		return EveryUpdate, nil
	case "differ":
		return OnlyDiffer, nil
	default:
		return 0, errors.New("invalid history mode")
	}
}

func (m HistoryChangeMode) String() string {
	switch m {
	case EveryUpdate:
		return "every"
	case OnlyDiffer:
		return "differ"
	default:
		return fmt.Sprintf("HistoryChangeMode(%d)", int(m))
	}
}

// SvcConfig is the validated service configuration. It is assembled once
// by [LoadConfig] and never mutated afterwards.
//
// Endpoint fields use the zero netip.AddrPort to mean "not configured";
// check with IsValid before use.
type SvcConfig struct {
	// RouterID is the local router identifier, always an IPv4 address.
	RouterID netip.Addr

	// BGPPeerAS is the autonomous system number announced for the peer.
	// Zero means not configured.
	BGPPeerAS uint32

	// BGPPeer is the remote endpoint for actively initiated BGP sessions.
	BGPPeer netip.AddrPort

	// BMPPeer is the remote endpoint for actively initiated BMP sessions.
	BMPPeer netip.AddrPort

	// ProtoListen is the local listener endpoint for passive BGP/BMP
	// sessions.
	ProtoListen netip.AddrPort

	// HTTPListen is the endpoint the HTTP API binds to.
	HTTPListen netip.AddrPort

	// HTTPRoot is the directory the HTTP API serves static content from.
	HTTPRoot string

	// HTTPTimeout bounds handling of a single HTTP API request.
	HTTPTimeout time.Duration

	// HistoryDepth is the number of history records kept per route.
	HistoryDepth int

	// HistoryMode controls when a history record is written.
	HistoryMode HistoryChangeMode

	// PurgeAfterWithdraws drops a route after this many consecutive
	// withdraws. Zero disables withdraw-based purging.
	PurgeAfterWithdraws uint64

	// PurgeEvery is the interval between purge sweeps over stored routes.
	PurgeEvery time.Duration

	// WhoisConfig maps domain zones and registries to whois servers.
	WhoisConfig *whois.WhoIs

	// WhoisDB is the path of the whois answer cache database.
	WhoisDB string

	// WhoisRequestTimeout bounds a single whois query.
	WhoisRequestTimeout time.Duration

	// WhoisCacheTime is how long cached whois answers stay valid.
	WhoisCacheTime time.Duration

	// WhoisDNS lists the resolvers used for whois-related DNS lookups.
	// Guaranteed non-empty after a successful load.
	WhoisDNS []netip.AddrPort

	// PeerMode selects the session protocol and connection direction.
	PeerMode PeerMode
}

package config

import (
	"fmt"
	"math"
	"net/netip"
	"strconv"
	"strings"
	"time"

	"github.com/lanrat/bgpexplorer/src/internal/ini"
	"github.com/lanrat/bgpexplorer/src/internal/log"
)

// defaultPolicy selects what an absent key yields.
type defaultPolicy int

const (
	// fixedDefault substitutes the field default when the key is absent.
	fixedDefault defaultPolicy = iota
	// modeRequired defers to the peer mode: absence is fatal when the
	// mode marks the field required, otherwise the value stays zero.
	modeRequired
	// noDefault makes an absent key fatal unconditionally.
	noDefault
)

// parseFailure selects how a present value that fails to parse is handled.
type parseFailure int

const (
	// failWrap reports failMsg with the parse error attached.
	failWrap parseFailure = iota
	// failFixed reports failMsg alone, hiding the parse error.
	failFixed
	// failSilent substitutes the field default.
	failSilent
)

// field describes how one ini key becomes a typed configuration value.
// The zero policies give the common behavior: absent key substitutes the
// default, parse failure is fatal with the cause attached.
type field[T any] struct {
	section string
	key     string

	policy defaultPolicy
	def    T

	// missingMsg reports an absent key under noDefault, or under
	// modeRequired when the mode marks the field mandatory.
	missingMsg string

	// bareMsg reports a key that is present without a value. Empty means
	// a bare key substitutes the default instead of failing.
	bareMsg string

	onFail  parseFailure
	failMsg string

	parse func(string) (T, error)
}

// extract resolves the field against the raw settings. required is
// consulted only under the modeRequired policy.
func (f *field[T]) extract(raw ini.Sections, required bool) (T, *Error) {
	var zero T

	if !raw.Has(f.section, f.key) {
		switch f.policy {
		case noDefault:
			return zero, errAt(f.section, f.key, f.missingMsg)
		case modeRequired:
			if required {
				return zero, errAt(f.section, f.key, f.missingMsg)
			}
			return zero, nil
		default:
			return f.def, nil
		}
	}

	value := raw.Get(f.section, f.key)
	if value == nil {
		if f.bareMsg == "" {
			return f.def, nil
		}
		return zero, errAt(f.section, f.key, f.bareMsg)
	}

	parsed, err := f.parse(*value)
	if err != nil {
		switch f.onFail {
		case failSilent:
			return f.def, nil
		case failFixed:
			return zero, errAt(f.section, f.key, f.failMsg)
		default:
			return zero, wrapAt(f.section, f.key, f.failMsg, err)
		}
	}
	return parsed, nil
}

// parsePeerAddr returns a parser for remote endpoints: a full host:port
// literal, or a bare IP paired with defPort.
func parsePeerAddr(defPort uint16) func(string) (netip.AddrPort, error) {
	return func(s string) (netip.AddrPort, error) {
		if ap, err := netip.ParseAddrPort(s); err == nil {
			return ap, nil
		}
		addr, err := netip.ParseAddr(s)
		if err != nil {
			return netip.AddrPort{}, err
		}
		return netip.AddrPortFrom(addr, defPort), nil
	}
}

// parseListenAddr is parsePeerAddr with a wildcard fallback: a value that
// parses neither as host:port nor as a bare IP binds 0.0.0.0 on defPort.
func parseListenAddr(defPort uint16) func(string) (netip.AddrPort, error) {
	peer := parsePeerAddr(defPort)
	return func(s string) (netip.AddrPort, error) {
		if ap, err := peer(s); err == nil {
			return ap, nil
		}
		return netip.AddrPortFrom(netip.IPv4Unspecified(), defPort), nil
	}
}

// parseIPv4 parses an address and rejects anything that is not plain IPv4.
func parseIPv4(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, err
	}
	if !addr.Is4() {
		return netip.Addr{}, fmt.Errorf("%s is not an IPv4 address", s)
	}
	return addr, nil
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	return uint32(v), err
}

func parseUint64(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

// parseCount parses an unsigned decimal count. Bit size 63 keeps the
// value representable as a nonnegative int.
func parseCount(s string) (int, error) {
	v, err := strconv.ParseUint(s, 10, 63)
	return int(v), err
}

// parseSeconds parses a signed integer number of seconds. Counts whose
// nanosecond equivalent does not fit in a time.Duration are out of range.
func parseSeconds(s string) (time.Duration, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt64/int64(time.Second) || v < math.MinInt64/int64(time.Second) {
		return 0, strconv.ErrRange
	}
	return time.Duration(v) * time.Second, nil
}

// parseUintSeconds parses an unsigned integer number of seconds, under
// the same time.Duration range bound as parseSeconds.
func parseUintSeconds(s string) (time.Duration, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt64/uint64(time.Second) {
		return 0, strconv.ErrRange
	}
	return time.Duration(v) * time.Second, nil
}

func parseString(s string) (string, error) {
	return s, nil
}

// parseResolverList splits a comma-separated resolver list. Entries parse
// as host:port, or as a bare IP that gets port 53. Entries that parse as
// neither are logged and dropped; the list itself never fails.
func parseResolverList(s string) ([]netip.AddrPort, error) {
	var resolvers []netip.AddrPort
	for _, entry := range strings.Split(s, ",") {
		trimmed := strings.TrimSpace(entry)
		if ap, err := netip.ParseAddrPort(trimmed); err == nil {
			resolvers = append(resolvers, ap)
			continue
		}
		if ap, err := netip.ParseAddrPort(trimmed + ":53"); err == nil {
			resolvers = append(resolvers, ap)
			continue
		}
		log.Errorf("Invalid DNS: %s", entry)
	}
	return resolvers, nil
}

package config

import (
	"fmt"
	"net/netip"
	"path/filepath"
	"time"

	"github.com/lanrat/bgpexplorer/src/internal/ini"
	"github.com/lanrat/bgpexplorer/src/internal/log"
	"github.com/lanrat/bgpexplorer/src/internal/whois"
)

// Defaults substituted for absent settings.
const (
	DefaultHTTPRoot            = "./contrib"
	DefaultWhoisDB             = "whoiscache.db"
	DefaultHistoryDepth        = 10
	DefaultHTTPTimeout         = 120 * time.Second
	DefaultWhoisRequestTimeout = 30 * time.Second
	DefaultWhoisCacheTime      = 1800 * time.Second
	DefaultPurgeEvery          = 5 * time.Minute
)

// Well-known ports assigned to bare-IP endpoint values.
const (
	defaultBGPPort uint16 = 179
	defaultBMPPort uint16 = 632
)

var (
	defaultRouterID   = netip.MustParseAddr("1.1.1.1")
	defaultHTTPListen = netip.MustParseAddrPort("0.0.0.0:8080")
	defaultWhoisDNS   = netip.MustParseAddrPort("1.1.1.1:53")
)

// LoadConfig reads the INI settings file at configPath and assembles the
// service configuration. Settings are resolved in a fixed order and the
// first failure aborts the load, so either a complete configuration or a
// single error comes back, never both.
func LoadConfig(configPath string) (*SvcConfig, error) {
	configFile := filepath.Clean(configPath)
	if !filepath.IsAbs(configFile) {
		path, err := filepath.Abs(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path of settings file: %v", err)
		}
		configFile = path
	}

	raw, err := ini.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %v", err)
	}

	log.Debugf("Loaded settings file: %s", configFile)

	cfg, cerr := assemble(raw, configFile)
	if cerr != nil {
		return nil, cerr
	}
	return cfg, nil
}

// assemble resolves every setting from the raw sections. path only
// appears in error messages.
func assemble(raw ini.Sections, path string) (*SvcConfig, *Error) {
	if !raw.HasSection("main") {
		return nil, errAt("main", "", "Missing section 'main' in ini file")
	}
	if !raw.Has("main", "session") {
		return nil, errAt("main", "session",
			fmt.Sprintf("Missing value 'session' in [main] section ini file %s", path))
	}
	sessionValue := raw.Get("main", "session")
	if sessionValue == nil {
		return nil, errAt("main", "session", "No session specified")
	}
	session := *sessionValue
	if !raw.HasSection(session) {
		return nil, errAt(session, "", fmt.Sprintf("Missing section '%s' in ini file", session))
	}

	if !raw.Has(session, "mode") {
		return nil, errAt(session, "mode",
			fmt.Sprintf("Missing value 'mode' in [%s] section ini file %s", session, path))
	}
	modeValue := raw.Get(session, "mode")
	if modeValue == nil {
		return nil, errAt(session, "mode", "No mode (bgpactive|bgppassive|bmpactive|bmppassive) specified")
	}
	mode, err := ParsePeerMode(*modeValue)
	if err != nil {
		return nil, errAt(session, "mode", err.Error())
	}

	cfg := &SvcConfig{PeerMode: mode}
	var cerr *Error

	bgpPeer := &field[netip.AddrPort]{
		section: session, key: "bgppeer",
		policy:     modeRequired,
		missingMsg: "bgppeer was not specified",
		bareMsg:    "invalid bgppeer was specified",
		onFail:     failFixed, failMsg: "invalid bgppeer was specified",
		parse: parsePeerAddr(defaultBGPPort),
	}
	if cfg.BGPPeer, cerr = bgpPeer.extract(raw, mode.requiresBGPPeer()); cerr != nil {
		return nil, cerr
	}

	bmpPeer := &field[netip.AddrPort]{
		section: session, key: "bmppeer",
		policy:     modeRequired,
		missingMsg: "bmppeer was not specified",
		bareMsg:    "invalid bmppeer was specified",
		onFail:     failFixed, failMsg: "invalid bmppeer was specified",
		parse: parsePeerAddr(defaultBMPPort),
	}
	if cfg.BMPPeer, cerr = bmpPeer.extract(raw, mode.requiresBMPPeer()); cerr != nil {
		return nil, cerr
	}

	// parseListenAddr cannot fail, so onFail never applies here.
	protoListen := &field[netip.AddrPort]{
		section: session, key: "protolisten",
		policy:     modeRequired,
		missingMsg: "protolisten was not specified",
		bareMsg:    "invalid protolisten was specified",
		parse:      parseListenAddr(defaultBGPPort),
	}
	if cfg.ProtoListen, cerr = protoListen.extract(raw, mode.requiresListener()); cerr != nil {
		return nil, cerr
	}

	routerID := &field[netip.Addr]{
		section: session, key: "routerid",
		def:     defaultRouterID,
		bareMsg: "invalid routerid was specified",
		failMsg: "Invalid routerid",
		parse:   parseIPv4,
	}
	if cfg.RouterID, cerr = routerID.extract(raw, false); cerr != nil {
		return nil, cerr
	}

	peerAS := &field[uint32]{
		section: session, key: "peeras",
		bareMsg: "invalid bgppeeras was specified",
		failMsg: "Invalid bgp peer as",
		parse:   parseUint32,
	}
	if cfg.BGPPeerAS, cerr = peerAS.extract(raw, false); cerr != nil {
		return nil, cerr
	}

	httpListen := &field[netip.AddrPort]{
		section: "main", key: "httplisten",
		def:     defaultHTTPListen,
		failMsg: "Invalid httplisten",
		parse:   netip.ParseAddrPort,
	}
	if cfg.HTTPListen, cerr = httpListen.extract(raw, false); cerr != nil {
		return nil, cerr
	}

	httpTimeout := &field[time.Duration]{
		section: "main", key: "httptimeout",
		def:    DefaultHTTPTimeout,
		onFail: failSilent,
		parse:  parseUintSeconds,
	}
	if cfg.HTTPTimeout, cerr = httpTimeout.extract(raw, false); cerr != nil {
		return nil, cerr
	}

	httpRoot := &field[string]{
		section: "main", key: "httproot",
		def:   DefaultHTTPRoot,
		parse: parseString,
	}
	if cfg.HTTPRoot, cerr = httpRoot.extract(raw, false); cerr != nil {
		return nil, cerr
	}

	historyDepth := &field[int]{
		section: "main", key: "historydepth",
		def:     DefaultHistoryDepth,
		bareMsg: "invalid historydepth was specified",
		failMsg: "Invalid historydepth",
		parse:   parseCount,
	}
	if cfg.HistoryDepth, cerr = historyDepth.extract(raw, false); cerr != nil {
		return nil, cerr
	}

	historyMode := &field[HistoryChangeMode]{
		section: "main", key: "historymode",
		def:     OnlyDiffer,
		bareMsg: "invalid historymode was specified",
		failMsg: "Invalid historymode",
		parse:   ParseHistoryMode,
	}
	if cfg.HistoryMode, cerr = historyMode.extract(raw, false); cerr != nil {
		return nil, cerr
	}

	purgeWithdraws := &field[uint64]{
		section: "main", key: "purge_after_withdraws",
		bareMsg: "invalid purge_after_withdraws was specified",
		failMsg: "Invalid purge_after_withdraws",
		parse:   parseUint64,
	}
	if cfg.PurgeAfterWithdraws, cerr = purgeWithdraws.extract(raw, false); cerr != nil {
		return nil, cerr
	}

	purgeEvery := &field[time.Duration]{
		section: "main", key: "purge_every",
		def:     DefaultPurgeEvery,
		bareMsg: "invalid purge_every was specified",
		failMsg: "Invalid purge_every",
		parse:   parseSeconds,
	}
	if cfg.PurgeEvery, cerr = purgeEvery.extract(raw, false); cerr != nil {
		return nil, cerr
	}

	whoisTimeout := &field[time.Duration]{
		section: "main", key: "whois_request_timeout",
		def:    DefaultWhoisRequestTimeout,
		onFail: failSilent,
		parse:  parseUintSeconds,
	}
	if cfg.WhoisRequestTimeout, cerr = whoisTimeout.extract(raw, false); cerr != nil {
		return nil, cerr
	}

	whoisCache := &field[time.Duration]{
		section: "main", key: "whois_cache_seconds",
		def:    DefaultWhoisCacheTime,
		onFail: failSilent,
		parse:  parseSeconds,
	}
	if cfg.WhoisCacheTime, cerr = whoisCache.extract(raw, false); cerr != nil {
		return nil, cerr
	}

	whoisJSON := &field[string]{
		section: "main", key: "whoisjsonconfig",
		policy:     noDefault,
		missingMsg: "Invalid whoisjsonconfig",
		bareMsg:    "Invalid whoisjsonconfig",
		parse:      parseString,
	}
	whoisPath, cerr := whoisJSON.extract(raw, false)
	if cerr != nil {
		return nil, cerr
	}
	servers, werr := whois.FromPath(whoisPath)
	if werr != nil {
		return nil, wrapAt("main", "whoisjsonconfig", "Invalid whoisjsonconfig", werr)
	}
	cfg.WhoisConfig = servers

	whoisDB := &field[string]{
		section: "main", key: "whoisdb",
		def:     DefaultWhoisDB,
		bareMsg: "Invalid whoisdb",
		parse:   parseString,
	}
	if cfg.WhoisDB, cerr = whoisDB.extract(raw, false); cerr != nil {
		return nil, cerr
	}

	whoisDNS := &field[[]netip.AddrPort]{
		section: "main", key: "whoisdns",
		bareMsg: "Invalid whoisdns",
		parse:   parseResolverList,
	}
	if cfg.WhoisDNS, cerr = whoisDNS.extract(raw, false); cerr != nil {
		return nil, cerr
	}
	if len(cfg.WhoisDNS) == 0 {
		cfg.WhoisDNS = []netip.AddrPort{defaultWhoisDNS}
	}

	return cfg, nil
}

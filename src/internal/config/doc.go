// Package config turns an INI settings file into the immutable runtime
// configuration of the route explorer service.
//
// Loading is a single pass: the file is parsed into raw sections, the
// session is selected through the [main] section, and every setting is
// resolved in a fixed order into a [SvcConfig]. The first setting that
// cannot be resolved aborts the whole load; a partially assembled
// configuration is never returned.
//
// # Resolution policies
//
// Each setting carries one of three policies for an absent key:
//
//   - a fixed default that silently fills the value,
//   - mode-dependent: the peer mode decides whether absence is fatal,
//   - always required: absence is fatal regardless of mode.
//
// A key that is present but has no value ("bare") is distinct from an
// absent key. Most settings treat a bare key as fatal, a few substitute
// their default instead.
//
// # Usage
//
//	cfg, err := config.LoadConfig("/etc/bgpexplorer.ini")
//	if err != nil {
//		log.Fatalf("%v", err)
//	}
//	fmt.Println(cfg.PeerMode, cfg.HTTPListen)
//
// All errors produced here are [*Error] values carrying the section and
// key they point at, so callers can report the offending setting without
// parsing message text.
package config

package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/lanrat/bgpexplorer/src/internal/config"
	"github.com/lanrat/bgpexplorer/src/internal/log"
)

func CreateDumpCommand() *DumpCommand {
	gc := &DumpCommand{
		fs: flag.NewFlagSet("dump", flag.ExitOnError),
	}
	return gc
}

// DumpCommand prints the effective configuration, defaults included, as
// key = value lines on stdout. Log output is forced to stderr so the
// dump stays machine-readable.
type DumpCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.SvcConfig
}

func (d *DumpCommand) Name() string {
	return d.fs.Name()
}

func (d *DumpCommand) Init(args []string, ctx *AppContext) error {
	d.ctx = ctx
	log.SetForceStdErr(true)

	if err := d.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		d.cfg = cfg
	}

	return nil
}

func (d *DumpCommand) Run() error {
	cfg := d.cfg
	w := os.Stdout

	fmt.Fprintf(w, "mode = %s\n", cfg.PeerMode)
	if cfg.BGPPeer.IsValid() {
		fmt.Fprintf(w, "bgppeer = %s\n", cfg.BGPPeer)
	}
	if cfg.BMPPeer.IsValid() {
		fmt.Fprintf(w, "bmppeer = %s\n", cfg.BMPPeer)
	}
	if cfg.ProtoListen.IsValid() {
		fmt.Fprintf(w, "protolisten = %s\n", cfg.ProtoListen)
	}
	fmt.Fprintf(w, "routerid = %s\n", cfg.RouterID)
	fmt.Fprintf(w, "peeras = %d\n", cfg.BGPPeerAS)
	fmt.Fprintf(w, "httplisten = %s\n", cfg.HTTPListen)
	fmt.Fprintf(w, "httptimeout = %d\n", int64(cfg.HTTPTimeout.Seconds()))
	fmt.Fprintf(w, "httproot = %s\n", cfg.HTTPRoot)
	fmt.Fprintf(w, "historydepth = %d\n", cfg.HistoryDepth)
	fmt.Fprintf(w, "historymode = %s\n", cfg.HistoryMode)
	fmt.Fprintf(w, "purge_after_withdraws = %d\n", cfg.PurgeAfterWithdraws)
	fmt.Fprintf(w, "purge_every = %d\n", int64(cfg.PurgeEvery.Seconds()))
	fmt.Fprintf(w, "whois_request_timeout = %d\n", int64(cfg.WhoisRequestTimeout.Seconds()))
	fmt.Fprintf(w, "whois_cache_seconds = %d\n", int64(cfg.WhoisCacheTime.Seconds()))
	fmt.Fprintf(w, "whoisdb = %s\n", cfg.WhoisDB)
	fmt.Fprintf(w, "whoisdns = %s\n", formatResolvers(cfg.WhoisDNS))

	return nil
}

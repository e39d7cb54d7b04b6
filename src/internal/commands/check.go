package commands

import (
	"flag"

	"github.com/lanrat/bgpexplorer/src/internal/config"
	"github.com/lanrat/bgpexplorer/src/internal/log"
)

func CreateCheckCommand() *CheckCommand {
	gc := &CheckCommand{
		fs: flag.NewFlagSet("check", flag.ExitOnError),
	}
	return gc
}

type CheckCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.SvcConfig
}

func (c *CheckCommand) Name() string {
	return c.fs.Name()
}

func (c *CheckCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		c.cfg = cfg
	}

	return nil
}

func (c *CheckCommand) Run() error {
	log.Infof("Checking configuration...")
	log.Infof("---------------- Configuration START -----------------")
	c.logSummary()
	log.Infof("----------------- Configuration END ------------------")
	log.Infof("Configuration is valid")
	return nil
}

func (c *CheckCommand) logSummary() {
	cfg := c.cfg

	log.Infof("Session mode: %s", cfg.PeerMode)
	if cfg.BGPPeer.IsValid() {
		log.Infof("BGP peer: %s (AS%d)", cfg.BGPPeer, cfg.BGPPeerAS)
	}
	if cfg.BMPPeer.IsValid() {
		log.Infof("BMP peer: %s", cfg.BMPPeer)
	}
	if cfg.ProtoListen.IsValid() {
		log.Infof("Protocol listener: %s", cfg.ProtoListen)
	}
	log.Infof("Router ID: %s", cfg.RouterID)
	log.Infof("HTTP API: %s (root %s, timeout %s)", cfg.HTTPListen, cfg.HTTPRoot, cfg.HTTPTimeout)
	log.Infof("History: depth %d, record on %s", cfg.HistoryDepth, cfg.HistoryMode)
	if cfg.PurgeAfterWithdraws > 0 {
		log.Infof("Purge: after %d withdraws, sweep every %s", cfg.PurgeAfterWithdraws, cfg.PurgeEvery)
	} else {
		log.Infof("Purge: sweep every %s", cfg.PurgeEvery)
	}
	log.Infof("Whois: %d servers, cache %s (valid %s), request timeout %s",
		cfg.WhoisConfig.Len(), cfg.WhoisDB, cfg.WhoisCacheTime, cfg.WhoisRequestTimeout)
	log.Infof("Whois DNS: %s", formatResolvers(cfg.WhoisDNS))
}

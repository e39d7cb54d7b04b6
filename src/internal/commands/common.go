package commands

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/lanrat/bgpexplorer/src/internal/config"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
}

// loadAndValidateConfigOrFail loads the settings file and re-checks the
// assembled configuration.
func loadAndValidateConfigOrFail(configPath string) (*config.SvcConfig, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	return cfg, nil
}

// formatResolvers renders a resolver list the way the whoisdns setting
// is written in the ini file.
func formatResolvers(resolvers []netip.AddrPort) string {
	parts := make([]string, 0, len(resolvers))
	for _, r := range resolvers {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, ", ")
}

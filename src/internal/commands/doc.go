// Package commands implements CLI command handlers for bgpexplorer.
//
// Each subcommand implements the Runner interface and delegates the real
// work to the config and whois layers.
//
// # Command Structure
//
// All commands follow a consistent pattern:
//   - Init(): Parse arguments and load the configuration
//   - Run(): Execute the command
//   - Name(): Return the command name for routing
//
// # Available Commands
//
//   - check: Load and validate the settings file, printing a summary
//   - dump: Print the effective configuration, defaults included
//
// # Example Usage
//
// Creating and running a command:
//
//	cmd := commands.CreateCheckCommand()
//	ctx := &commands.AppContext{
//	    ConfigPath: "/etc/bgpexplorer.ini",
//	    Verbose:    true,
//	}
//	if err := cmd.Init(args, ctx); err != nil {
//	    log.Fatal(err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatal(err)
//	}
package commands

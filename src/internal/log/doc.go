// Package log provides simple leveled logging for bgpexplorer.
//
// This package implements a lightweight logging system with colored output
// and support for different log levels: DEBUG, INFO, WARN, and ERROR.
// It provides global logging functions that can be used throughout the
// application.
//
// # Log Levels
//
//   - DEBUG: Detailed diagnostic information (only shown in verbose mode)
//   - INFO: General informational messages
//   - WARN: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures and exceptions
//
// # Example Usage
//
// Basic logging:
//
//	log.Infof("Loading configuration from %s", path)
//	log.Warnf("Falling back to default resolver")
//	log.Errorf("Failed to load configuration: %v", err)
//
// Enabling verbose mode for debug output:
//
//	log.SetVerbose(true)
//	log.Debugf("Resolved session section: %s", session)
//
// Fatal errors that exit the application:
//
//	if err != nil {
//	    log.Fatalf("Critical error: %v", err) // Exits with code 1
//	}
//
// Output control:
//
//	log.SetForceStdErr(true) // Send all logs to stderr
//
// Error-level messages always go to stderr; other levels go to stdout
// unless SetForceStdErr is enabled.
package log

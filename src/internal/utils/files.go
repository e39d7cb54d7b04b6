package utils

import (
	"io"

	"github.com/lanrat/bgpexplorer/src/internal/log"
)

// CloseOrWarn closes c and downgrades a failure to a warning. For
// read-only handles, where a close error cannot corrupt anything.
func CloseOrWarn(c io.Closer) {
	if err := c.Close(); err != nil {
		log.Warnf("Failed to close file: %v", err)
	}
}

package wad

import (
	"io"

	"github.com/charmbracelet/log"
)

// logger discards everything by default; decode progress is logged at
// debug level for callers that opt in via SetLogger.
var logger = log.New(io.Discard)

// SetLogger routes the package's decode logging to l.
func SetLogger(l *log.Logger) {
	logger = l
}

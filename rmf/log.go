package rmf

import "github.com/brushfix/brushfix/internal/logger"

// Log is this package's own child logger, so the CLI's -rd flag can raise
// just the RMF read path to DEBUG without affecting the rest of the
// pipeline's log level (SPEC_FULL.md §2.1; internal/logger's New/parent
// hierarchy, as g3n-engine's packages use it).
var Log = logger.New("rmf", logger.Default)

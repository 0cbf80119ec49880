// Package util holds small helpers shared across vmsim's packages.
package util

import (
	"log/slog"
	"os"
)

// CloseFileFunc closes f and logs any error instead of discarding it,
// for use behind a defer where the caller already has a real error path
// for everything else.
func CloseFileFunc(f *os.File) {
	if err := f.Close(); err != nil {
		slog.Error("vmsim: close file", "name", f.Name(), "err", err)
	}
}

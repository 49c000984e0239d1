// cmd/server/main.go
// This is the entry point for the starter API server.
// The "cmd/server" directory follows a common Go convention: the cmd/ folder holds executable
// binaries, and internal/ holds packages that are not meant to be imported by other projects.
package main

import (
	"log/slog"
	"os"

	"github.com/trentd187/fiber-starter/internal/apperr"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Startup failures (missing DATABASE_URL, unreachable store, failed migration,
		// port in use) are not recoverable: report and exit non-zero.
		slog.Error("server failed", "error", err, "kind", apperr.KindOf(err).String())
		os.Exit(1)
	}
}

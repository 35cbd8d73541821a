// Command docdex converts folders of documents into knowledge cards,
// retrieval chunks and a run manifest.
package main

import (
	"os"

	"github.com/custodia-labs/docdex-cli/internal/adapters/driving/cli"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

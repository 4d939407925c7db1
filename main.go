// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for the Achei client.
//
// Usage:
//
//	go run . [flags]
//	./achei [flags]
//
// This launches the Achei CLI. See --help for options. Running without a
// subcommand starts the interactive portal (TUI).
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/acheiapp/achei/ui/cli"
)

// version is set at build time using -ldflags, e.g.:
// go build -ldflags "-X main.version=1.2.3"
var version = "dev"

func main() {
	if os.Getenv("ACHEI_SHOW_VERSION") == "1" {
		fmt.Fprintf(os.Stderr, "Achei version: %s\n", version)
	}

	if err := cli.Execute(); err != nil {
		log.Printf("Achei CLI error: %v", err)
		os.Exit(1)
	}
}

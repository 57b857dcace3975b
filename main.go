package main

import (
	"os"

	"github.com/mordilloSan/go-storelog/internal/cli"
)

// Usage: ./go-storelog demo --store 3
// Usage: ./go-storelog log --file app.log --file-logging -s warning "low memory"
func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

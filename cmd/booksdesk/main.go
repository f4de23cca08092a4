package main

import (
	"os"

	"github.com/booksdesk-dev/booksdesk/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

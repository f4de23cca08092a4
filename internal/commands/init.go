package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/booksdesk-dev/booksdesk/internal/config"
	"github.com/booksdesk-dev/booksdesk/internal/ledger"
)

func newInitCommand() *cobra.Command {
	var homeCurrency string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a booksdesk data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, homeCurrency)
		},
	}

	cmd.Flags().StringVar(&homeCurrency, "home-currency", "MUR", "home currency code")

	return cmd
}

func runInit(dir, homeCurrency string) error {
	for _, d := range []string{"accounts", "logs", "export"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default()
	cfg.Books.HomeCurrency = homeCurrency
	cfg.Data.Dir = dir
	if err := config.Save(filepath.Join(dir, "booksdesk.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	svc := ledger.NewService(ledger.DefaultChart())
	if err := svc.Save(dir); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}

	return nil
}

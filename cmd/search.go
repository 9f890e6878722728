package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kitinventory/core/catalog"
	"kitinventory/core/config"
	"kitinventory/core/logger"
	"kitinventory/feature/inventory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var searchTimeoutSeconds int

// searchCmd searches the remote catalog for kits from the terminal.
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the part catalog for kits",
	Long: `Search the remote part catalog for kits by name or product number.

Examples:
  kitinventory search "Universal 4"
  kitinventory search 548885`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logg, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		api := catalog.NewClient(cfg.Catalog)
		fetcher := inventory.NewFetcher(api, cfg.Catalog, logg)

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(searchTimeoutSeconds)*time.Second)
		defer cancel()

		query := strings.Join(args, " ")
		kits, err := fetcher.SearchKits(ctx, query)
		if err != nil {
			return err
		}

		if len(kits) == 0 {
			fmt.Println("No kits found.")
			return nil
		}

		for _, kit := range kits {
			fmt.Printf("%8d  %-12s  %s\n", kit.ID, kit.PartNo, kit.Name)
		}
		logg.Debug("search finished", zap.Int("results", len(kits)))
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchTimeoutSeconds, "timeout", 30, "search timeout in seconds")
	RootCmd.AddCommand(searchCmd)
}

package main

import (
	"context"
	"os"

	"github.com/cklose/sqlxfix/pkg/fixup"
	"github.com/cklose/sqlxfix/pkg/rewrite"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	// Setup logging
	setupLogging()
	ctx := log.Logger.WithContext(context.Background())

	// Create user logger
	userLogger := fixup.NewUserLogger(ctx)

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "sqlxfix",
		Short: "Rewrite sqlx query-macro calls into builder-style chains",
		Long: `sqlxfix converts two-argument sqlx::query(sql, param) calls in the agent
source file into sqlx::query(sql).bind(param) chains, writing a backup
copy of the file before touching it.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			applyLogLevel()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			op := fixup.New(rewrite.NewSQLXRewriter(), userLogger)
			if _, err := op.FixFile(cmd.Context(), targetPath); err != nil {
				return err
			}

			pterm.Println()
			pterm.Info.Println("You can now run: cargo build --release")
			return nil
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		userLogger.LogValidation(false, "Rewrite failed", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/walteh/remaprc/cmd/remaprc/commands"
	remaplog "github.com/walteh/remaprc/pkg/log"
	"github.com/walteh/remaprc/pkg/status"
)

func main() {
	// Setup logging
	setupLogging()
	ctx := log.Logger.WithContext(context.Background())
	ctx = remaplog.NewContext(ctx, remaplog.New(os.Stdout, zerolog.InfoLevel))

	// Create user logger
	userLogger := status.NewUserLogger(ctx)

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "remaprc",
		Short: "A tool for safe multi-pattern text substitution",
		Long: `remaprc applies a declarative mapping table of (search, replace) pairs to
text files without the corruption naive sequential substitution produces:
replacements are staged through collision-free placeholders, longer patterns
always win over shorter ones they contain, and ambiguous tables are rejected
before any file is touched.`,
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewApplyCmd(newRootOpts),
		commands.NewCheckCmd(newRootOpts),
		commands.NewContextsCmd(newRootOpts),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		userLogger.LogValidation(false, "Command failed", err)
		os.Exit(1)
	}
}

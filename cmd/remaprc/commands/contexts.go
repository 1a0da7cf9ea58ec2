package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/remaprc/cmd/remaprc/opts"
	"github.com/walteh/remaprc/pkg/operation"
)

// NewContextsCmd creates a new contexts command
func NewContextsCmd(factory opts.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contexts <fragment> [files...]",
		Short: "Show every word-like token containing a fragment",
		Long: `Contexts reports every maximal word-like token in the payload files that
contains the given fragment. Use it to estimate the blast radius of a
short or generic search pattern before applying a mapping. Payload
files are only read, never written.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "contexts").Logger().WithContext(ctx)

			o, err := factory(ctx)
			if err != nil {
				return err
			}

			op, err := operation.New(operation.Options{
				Config:     o.Config,
				StatusMgr:  o.StatusMgr,
				UserLogger: o.UserLogger,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			fragment := args[0]
			contexts, err := op.Contexts(ctx, fragment, args[1:])
			if err != nil {
				return errors.Errorf("finding contexts: %w", err)
			}

			if len(contexts) == 0 {
				o.UserLogger.LogValidation(true, fmt.Sprintf("No context contains %q", fragment), nil)
				return nil
			}

			for _, c := range contexts {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}

	return cmd
}

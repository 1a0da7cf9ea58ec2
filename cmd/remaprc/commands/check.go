package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/remaprc/cmd/remaprc/opts"
	"github.com/walteh/remaprc/pkg/operation"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(factory opts.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the mapping table without touching any file",
		Long: `Check validates the mapping table and reports every problem found:
empty search keys, duplicate search keys, and (with reversible mode)
duplicate replace values. No payload file is read or written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "check").Logger().WithContext(ctx)

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

			if err := op.Check(ctx); err != nil {
				return errors.Errorf("checking mapping: %w", err)
			}

			return nil
		},
	}

	return cmd
}

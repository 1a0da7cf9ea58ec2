package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/remaprc/cmd/remaprc/opts"
	"github.com/walteh/remaprc/pkg/log"
	"github.com/walteh/remaprc/pkg/operation"
	"github.com/walteh/remaprc/pkg/status"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(factory opts.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply [files...]",
		Short: "Apply the mapping table to payload files",
		Long: `Apply runs the two-phase substitution over every payload file.
It will:
1. Validate the mapping table (all offending keys reported at once)
2. Resolve payload files from arguments or configured globs
3. Stage each search occurrence through a collision-free placeholder
4. Write the transformed content back atomically`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "apply").Logger().WithContext(ctx)

			o, err := factory(ctx)
			if err != nil {
				return err
			}

			op, err := operation.New(operation.Options{
				Config:     o.Config,
				StatusMgr:  o.StatusMgr,
				UserLogger: o.UserLogger,
				DryRun:     o.DryRun,
				Backup:     o.Backup,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			console := log.FromContext(ctx)
			console.Header("applying mapping")
			console.StartRunOperation(ctx, log.RunOperation{
				ConfigPath: o.ConfigPath,
				Entries:    len(o.Config.Mapping),
				Files:      len(args),
				DryRun:     o.DryRun,
			})

			if err := op.Apply(ctx, args); err != nil {
				console.EndRunOperation(ctx)
				return errors.Errorf("applying mapping: %w", err)
			}

			for _, info := range o.StatusMgr.ListFiles(ctx) {
				console.LogFileOperation(ctx, log.FileOperation{
					Path:         info.Path,
					Status:       info.Status.String(),
					IsRewritten:  info.Status == status.StatusRewritten,
					IsSkipped:    info.Status == status.StatusSkipped,
					IsFailed:     info.Status == status.StatusFailed,
					Replacements: info.Replacements,
				})
			}
			console.EndRunOperation(ctx)
			console.Successf("done (%d replacements)", o.StatusMgr.TotalReplacements(ctx))

			return nil
		},
	}

	return cmd
}

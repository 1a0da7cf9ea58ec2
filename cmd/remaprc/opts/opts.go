package opts

import (
	"context"

	"github.com/walteh/remaprc/pkg/config"
	"github.com/walteh/remaprc/pkg/status"
)

// Factory builds RootOpts once flags have been parsed
type Factory func(ctx context.Context) (*RootOpts, error)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config     *config.Config
	ConfigPath string
	StatusMgr  *status.Manager
	UserLogger *status.UserLogger
	DryRun     bool
	Backup     bool
}

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ecordell/optgen/helpers"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kubev2v/vcfctl/internal/config"
	"github.com/kubev2v/vcfctl/internal/console"
)

func NewConsoleCommand(cfg *config.Configuration) *cobra.Command {
	consoleCmd := &cobra.Command{
		Use:   "console",
		Short: "Log in and browse virtual centers interactively",
		Example: `  # Connect to a local backend
  vcfctl console --server-url http://localhost:8000

  # Preselect the VCF instance shown in the login form
  vcfctl console --server-url https://vcf-api.example.local --vcf-url https://vcf.example.local`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateServer(cfg.Server); err != nil {
				return err
			}

			zap.S().Debugw("using configuration",
				"server", helpers.Flatten(cfg.Server.DebugMap()),
				"login", helpers.Flatten(cfg.Login.DebugMap()),
			)

			client, err := newAPIClient(cfg.Server)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
			defer cancel()

			c := console.New(client, cmd.InOrStdin(), cmd.OutOrStdout(), console.WithDefaultVCFURL(cfg.Login.VCFURL))
			if err := c.Run(ctx); err != nil {
				return err
			}

			zap.S().Debug("console closed")
			return nil
		},
	}

	registerClientFlags(consoleCmd, cfg, false)

	return consoleCmd
}

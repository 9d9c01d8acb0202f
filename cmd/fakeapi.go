package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ecordell/optgen/helpers"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kubev2v/vcfctl/internal/config"
	"github.com/kubev2v/vcfctl/internal/fakeapi"
)

func NewFakeAPICommand(cfg *config.Configuration) *cobra.Command {
	fakeCmd := &cobra.Command{
		Use:    "fake-api",
		Short:  "Run a fake VCF backend for local testing",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFakeAPI(cfg.FakeAPI); err != nil {
				return err
			}

			zap.S().Infow("using configuration", "fake-api", helpers.Flatten(cfg.FakeAPI.DebugMap()))

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
			wg := sync.WaitGroup{}
			wg.Add(1)

			srv := fakeapi.New(fakeapi.Config{
				Username:   cfg.FakeAPI.AcceptedUsername,
				Password:   cfg.FakeAPI.AcceptedPassword,
				SessionTTL: cfg.FakeAPI.SessionTTL,
				Items:      sampleItems(),
				Debug:      cfg.LogLevel == "debug",
			})

			go func() {
				defer func() {
					wg.Done()
					cancel()
				}()
				zap.S().Infof("Starting fake api on port %d", cfg.FakeAPI.HTTPPort)

				if err := srv.Start(ctx, fmt.Sprintf("0.0.0.0:%d", cfg.FakeAPI.HTTPPort)); err != nil {
					if !errors.Is(err, http.ErrServerClosed) {
						zap.S().Errorw("failed to start fake api", "error", err)
					}
				}
			}()

			go func() {
				<-ctx.Done()
				stopCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				srv.Stop(stopCtx)
			}()

			<-ctx.Done()
			wg.Wait()

			zap.S().Info("fake api shutdown")

			return nil
		},
	}

	registerFakeAPIFlags(fakeCmd, cfg)

	return fakeCmd
}

// sampleItems mimics the upstream shapes: some records carry uuid/hostname instead of id/fqdn.
func sampleItems() []map[string]any {
	return []map[string]any{
		{"id": uuid.NewString(), "name": "vcenter-mgmt", "status": "ACTIVE", "version": "8.0.2", "fqdn": "vcenter-mgmt.vcf.local"},
		{"uuid": uuid.NewString(), "name": "vcenter-wld01", "status": "ACTIVE", "version": "8.0.2", "hostname": "vcenter-wld01.vcf.local"},
		{"name": "vcenter-wld02", "status": "ERROR"},
	}
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kubev2v/vcfctl/internal/config"
	"github.com/kubev2v/vcfctl/internal/flows"
	"github.com/kubev2v/vcfctl/internal/models"
	"github.com/kubev2v/vcfctl/internal/render"
)

// ErrSessionRejected is returned when the backend rejects the session right after login.
var ErrSessionRejected = errors.New("session rejected")

func NewListCommand(cfg *config.Configuration) *cobra.Command {
	output := string(render.FormatTable)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Log in once and print the virtual centers",
		Example: `  # Password taken from the environment
  VCF_PASSWORD=secret vcfctl list --server-url http://localhost:8000 --username admin

  # Print the list as yaml
  vcfctl list --username admin --password secret --output yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateServer(cfg.Server); err != nil {
				return err
			}
			format, err := render.ParseFormat(output)
			if err != nil {
				return err
			}

			creds := models.Credentials{
				BaseURL:  cfg.Login.VCFURL,
				Username: cfg.Login.Username,
				Password: passwordFromEnv(cfg.Login.Password),
			}
			if creds.Username == "" || creds.Password == "" {
				return fmt.Errorf("username and password are required")
			}

			client, err := newAPIClient(cfg.Server)
			if err != nil {
				return err
			}
			defer client.ResetSession()

			loginFlow := flows.NewLoginFlow(client)
			nav, err := loginFlow.Submit(cmd.Context(), creds)
			if err != nil {
				return err
			}
			if nav == nil {
				return errors.New(loginFlow.Status().Error)
			}

			listFlow := flows.NewListFlow(client)
			nav, err = listFlow.Load(cmd.Context())
			if err != nil {
				return err
			}
			if nav != nil {
				return fmt.Errorf("%w: %s", ErrSessionRejected, nav.Reason)
			}

			status := listFlow.Status()
			if status.State == models.ListStateError {
				return errors.New(status.Error)
			}

			return render.Write(cmd.OutOrStdout(), format, status.Items)
		},
	}

	registerClientFlags(listCmd, cfg, true)
	listCmd.Flags().StringVarP(&output, "output", "o", output, "Output format: table, json or yaml")

	return listCmd
}

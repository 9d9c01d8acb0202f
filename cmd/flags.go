package cmd

import (
	"fmt"
	"net/url"
	"os"

	"github.com/fatih/color"
	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kubev2v/vcfctl/internal/config"
	"github.com/kubev2v/vcfctl/pkg/apiclient"
)

const passwordEnv = "VCF_PASSWORD"

func flagSetTitle(name string) string {
	return color.New(color.FgBlue, color.Bold).Sprint(name)
}

func registerClientFlags(cmd *cobra.Command, cfg *config.Configuration, withLogin bool) {
	nfs := cobrautil.NewNamedFlagSets(cmd)

	serverFlagSet := nfs.FlagSet(flagSetTitle("Server"))
	registerServerFlags(serverFlagSet, cfg)

	loginFlagSet := nfs.FlagSet(flagSetTitle("Login"))
	registerLoginFlags(loginFlagSet, cfg, withLogin)

	nfs.AddFlagSets(cmd)
}

func registerServerFlags(flagSet *pflag.FlagSet, cfg *config.Configuration) {
	flagSet.StringVar(&cfg.Server.URL, "server-url", cfg.Server.URL, "URL of the VCF backend")
	flagSet.BoolVar(&cfg.Server.InsecureSkipVerify, "insecure-skip-verify", cfg.Server.InsecureSkipVerify, "Skip TLS certificate verification of the backend")
	flagSet.DurationVar(&cfg.Server.Timeout, "timeout", cfg.Server.Timeout, "Timeout of every request. 0 keeps the transport default")
}

func registerLoginFlags(flagSet *pflag.FlagSet, cfg *config.Configuration, withCredentials bool) {
	flagSet.StringVar(&cfg.Login.VCFURL, "vcf-url", cfg.Login.VCFURL, "URL of the VCF instance to log into. Empty uses the backend default")
	if !withCredentials {
		return
	}
	flagSet.StringVar(&cfg.Login.Username, "username", cfg.Login.Username, "VCF username")
	flagSet.StringVar(&cfg.Login.Password, "password", cfg.Login.Password, fmt.Sprintf("VCF password. Read from %s when empty", passwordEnv))
}

func registerFakeAPIFlags(cmd *cobra.Command, cfg *config.Configuration) {
	nfs := cobrautil.NewNamedFlagSets(cmd)

	flagSet := nfs.FlagSet(flagSetTitle("Fake API"))
	flagSet.IntVar(&cfg.FakeAPI.HTTPPort, "http-port", cfg.FakeAPI.HTTPPort, "Port on which the fake backend is listening")
	flagSet.StringVar(&cfg.FakeAPI.AcceptedUsername, "accepted-username", cfg.FakeAPI.AcceptedUsername, "Username accepted by the fake backend")
	flagSet.StringVar(&cfg.FakeAPI.AcceptedPassword, "accepted-password", cfg.FakeAPI.AcceptedPassword, "Password accepted by the fake backend")
	flagSet.DurationVar(&cfg.FakeAPI.SessionTTL, "session-ttl", cfg.FakeAPI.SessionTTL, "Lifetime of a session")

	nfs.AddFlagSets(cmd)
}

func validateServer(cfg config.Server) error {
	u, err := url.ParseRequestURI(cfg.URL)
	if err != nil {
		return fmt.Errorf("invalid server-url %q: %w", cfg.URL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid server-url %q: scheme must be http or https", cfg.URL)
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("invalid timeout %s: must not be negative", cfg.Timeout)
	}
	return nil
}

func validateFakeAPI(cfg config.FakeAPI) error {
	if cfg.HTTPPort < 1 || cfg.HTTPPort > 65535 {
		return fmt.Errorf("invalid http-port %d: must be between 1 and 65535", cfg.HTTPPort)
	}
	if cfg.AcceptedUsername == "" || cfg.AcceptedPassword == "" {
		return fmt.Errorf("accepted-username and accepted-password cannot be empty")
	}
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("invalid session-ttl %s: must be positive", cfg.SessionTTL)
	}
	return nil
}

func newAPIClient(cfg config.Server) (*apiclient.Client, error) {
	opts := []apiclient.Option{apiclient.WithTimeout(cfg.Timeout)}
	if cfg.InsecureSkipVerify {
		opts = append(opts, apiclient.WithInsecureSkipVerify())
	}
	return apiclient.NewClient(cfg.URL, opts...)
}

func passwordFromEnv(password string) string {
	if password != "" {
		return password
	}
	return os.Getenv(passwordEnv)
}

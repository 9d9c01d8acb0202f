package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/kubev2v/vcfctl/internal/flows"
	"github.com/kubev2v/vcfctl/internal/models"
	"github.com/kubev2v/vcfctl/internal/render"
)

// Client is the api used by the pages.
type Client interface {
	flows.Authenticator
	flows.VirtualCenterFetcher
	ResetSession()
}

// Console is an interactive session: the login page, then the virtual centers page.
// Each time a page is entered it gets a new flow, so no state survives leaving it.
type Console struct {
	client        Client
	router        *Router
	prompt        *prompter
	out           io.Writer
	defaultVCFURL string
}

type Option func(c *Console)

// WithDefaultVCFURL is used when the url prompt is left blank.
func WithDefaultVCFURL(u string) Option {
	return func(c *Console) {
		c.defaultVCFURL = u
	}
}

func WithRouter(r *Router) Option {
	return func(c *Console) {
		c.router = r
	}
}

func New(client Client, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		client: client,
		router: NewRouter(models.PageLogin),
		prompt: newPrompter(in, out),
		out:    out,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Console) Router() *Router {
	return c.router
}

// Run shows pages until the user quits, the input ends or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		var err error
		switch c.router.Current().Page {
		case models.PageVirtualCenters:
			err = c.virtualCentersPage(ctx)
		default:
			err = c.loginPage(ctx)
		}

		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) loginPage(ctx context.Context) error {
	flow := flows.NewLoginFlow(c.client)

	render.Title(c.out, "VCF Login")
	if reason := c.router.Current().Reason; reason != "" {
		render.Error(c.out, reason)
	}

	for {
		creds, err := c.readCredentials()
		if err != nil {
			return err
		}

		nav, err := flow.Submit(ctx, creds)
		if err != nil {
			return err
		}
		if nav != nil {
			c.router.Navigate(*nav)
			return nil
		}

		render.Error(c.out, flow.Status().Error)
		if ctx.Err() != nil {
			return errQuit
		}
	}
}

func (c *Console) virtualCentersPage(ctx context.Context) error {
	flow := flows.NewListFlow(c.client)

	render.Title(c.out, "Virtual Centers")

	for {
		_, _ = fmt.Fprintln(c.out, render.LoadingMessage)

		nav, err := flow.Load(ctx)
		if err != nil {
			return err
		}
		if nav != nil {
			c.router.Navigate(*nav)
			return nil
		}

		status := flow.Status()
		if status.State == models.ListStateError {
			render.Error(c.out, status.Error)
		} else if err := render.VirtualCenters(c.out, status.Items); err != nil {
			return err
		}

		cmd, err := c.readCommand()
		if err != nil {
			return err
		}

		switch cmd {
		case "r":
			zap.S().Debug("reload requested")
		case "l":
			c.client.ResetSession()
			c.router.Navigate(models.Navigation{Page: models.PageLogin, Replace: true})
			return nil
		case "q":
			return errQuit
		}
	}
}

func (c *Console) readCredentials() (models.Credentials, error) {
	label := "URL"
	if c.defaultVCFURL != "" {
		label = fmt.Sprintf("URL [%s]", c.defaultVCFURL)
	}

	baseURL, err := c.prompt.ask(label)
	if err != nil {
		return models.Credentials{}, err
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = c.defaultVCFURL
	}

	username, err := c.askRequired("Username", c.prompt.ask)
	if err != nil {
		return models.Credentials{}, err
	}

	password, err := c.askRequired("Password", c.prompt.askSecret)
	if err != nil {
		return models.Credentials{}, err
	}

	return models.Credentials{
		BaseURL:  baseURL,
		Username: username,
		Password: password,
	}, nil
}

func (c *Console) askRequired(label string, ask func(string) (string, error)) (string, error) {
	for {
		value, err := ask(label)
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
	}
}

func (c *Console) readCommand() (string, error) {
	for {
		line, err := c.prompt.ask("[r]eload [l]ogout [q]uit")
		if err != nil {
			return "", err
		}
		switch cmd := strings.ToLower(strings.TrimSpace(line)); cmd {
		case "r", "l", "q":
			return cmd, nil
		}
	}
}

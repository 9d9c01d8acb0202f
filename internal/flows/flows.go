// Package flows holds the state machines behind the console pages.
// A flow owns the state of one page and is thrown away with it.
package flows

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/kubev2v/vcfctl/internal/models"
)

// ErrRequestInProgress is returned when a flow is triggered while its previous request is still running.
// The running request decides the outcome; the rejected trigger has no effect.
var ErrRequestInProgress = errors.New("request already in progress")

type Authenticator interface {
	Login(ctx context.Context, creds models.Credentials) (json.RawMessage, error)
}

type VirtualCenterFetcher interface {
	FetchVirtualCenters(ctx context.Context) (*models.VirtualCenterList, error)
}

type sessionResetter interface {
	ResetSession()
}

// errorMessage returns the message to display for err.
func errorMessage(err error) string {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return models.GenericErrorMessage
}

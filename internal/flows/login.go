package flows

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/kubev2v/vcfctl/internal/models"
)

type LoginFlow struct {
	client Authenticator

	mu        sync.RWMutex
	state     models.LoginState
	lastError string
}

func NewLoginFlow(client Authenticator) *LoginFlow {
	return &LoginFlow{
		client: client,
		state:  models.LoginStateIdle,
	}
}

// Status returns the current state of the form.
func (f *LoginFlow) Status() models.LoginStatus {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return models.LoginStatus{
		State: f.state,
		Error: f.lastError,
	}
}

// CanSubmit reports whether the submit control is enabled.
func (f *LoginFlow) CanSubmit() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state != models.LoginStateSubmitting
}

// Submit sends the credentials. It returns the navigation to perform on success
// and nil when the user stays on the form; the failure message is then in Status.
func (f *LoginFlow) Submit(ctx context.Context, creds models.Credentials) (*models.Navigation, error) {
	f.mu.Lock()
	if f.state == models.LoginStateSubmitting {
		f.mu.Unlock()
		return nil, ErrRequestInProgress
	}
	f.setState(models.LoginStateSubmitting)
	f.mu.Unlock()

	_, err := f.client.Login(ctx, creds)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		zap.S().Debugw("login failed", "username", creds.Username, "error", err)
		f.setError(errorMessage(err))
		return nil, nil
	}

	f.setState(models.LoginStateSuccess)

	return &models.Navigation{
		Page:    models.PageVirtualCenters,
		Replace: true,
	}, nil
}

func (f *LoginFlow) setState(state models.LoginState) {
	zap.S().Debugw("login state transition", "from", f.state, "to", state)
	f.state = state
	f.lastError = ""
}

func (f *LoginFlow) setError(msg string) {
	f.state = models.LoginStateFailed
	f.lastError = msg
}

package flows

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/kubev2v/vcfctl/internal/models"
)

type ListFlow struct {
	client VirtualCenterFetcher

	mu        sync.RWMutex
	state     models.ListState
	lastError string
	items     []models.VirtualCenter
}

func NewListFlow(client VirtualCenterFetcher) *ListFlow {
	return &ListFlow{
		client: client,
		state:  models.ListStateIdle,
		items:  []models.VirtualCenter{},
	}
}

// Status returns the current state of the page. Items is a copy.
func (f *ListFlow) Status() models.ListStatus {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return models.ListStatus{
		State: f.state,
		Error: f.lastError,
		Items: f.copyItems(),
	}
}

func (f *ListFlow) Items() []models.VirtualCenter {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.copyItems()
}

// Empty reports whether the page is ready with nothing to show.
func (f *ListFlow) Empty() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state == models.ListStateReady && len(f.items) == 0
}

// CanReload reports whether the reload control is enabled.
func (f *ListFlow) CanReload() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state != models.ListStateLoading
}

// Load fetches the virtual centers. It is used for the first display and for every reload.
// A rejected session yields a navigation back to the login page carrying the reason;
// any other failure stays on the page.
func (f *ListFlow) Load(ctx context.Context) (*models.Navigation, error) {
	f.mu.Lock()
	if f.state == models.ListStateLoading {
		f.mu.Unlock()
		return nil, ErrRequestInProgress
	}
	f.setState(models.ListStateLoading)
	f.mu.Unlock()

	list, err := f.client.FetchVirtualCenters(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.items = []models.VirtualCenter{}

		var apiErr *models.APIError
		if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
			zap.S().Infow("session rejected, redirecting to login", "code", apiErr.Code)
			f.setState(models.ListStateRedirecting)
			if r, ok := f.client.(sessionResetter); ok {
				r.ResetSession()
			}
			return &models.Navigation{
				Page:    models.PageLogin,
				Replace: true,
				Reason:  apiErr.Message,
			}, nil
		}

		zap.S().Debugw("failed to fetch virtual centers", "error", err)
		f.state = models.ListStateError
		f.lastError = errorMessage(err)
		return nil, nil
	}

	f.items = []models.VirtualCenter{}
	if list != nil && list.Items != nil {
		f.items = append(f.items, list.Items...)
	}
	f.setState(models.ListStateReady)

	return nil, nil
}

func (f *ListFlow) setState(state models.ListState) {
	zap.S().Debugw("list state transition", "from", f.state, "to", state)
	f.state = state
	f.lastError = ""
}

func (f *ListFlow) copyItems() []models.VirtualCenter {
	items := make([]models.VirtualCenter, len(f.items))
	copy(items, f.items)
	return items
}

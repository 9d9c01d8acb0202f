package models

// Page is a screen of the console.
type Page string

const (
	PageLogin          Page = "/"
	PageVirtualCenters Page = "/virtualcenters"
)

// Navigation is the decision taken by a flow once its request completed.
type Navigation struct {
	Page    Page
	Replace bool
	// Reason is shown on the target page.
	Reason string
}

// LoginState represents the current state of the login form.
type LoginState string

const (
	// LoginStateIdle - form shown, nothing submitted yet
	LoginStateIdle LoginState = "idle"
	// LoginStateSubmitting - login request in flight, submit disabled
	LoginStateSubmitting LoginState = "submitting"
	// LoginStateSuccess - backend accepted the credentials
	LoginStateSuccess LoginState = "success"
	// LoginStateFailed - backend or transport rejected the login
	LoginStateFailed LoginState = "failed"
)

type LoginStatus struct {
	State LoginState
	Error string
}

// ListState represents the current state of the virtual centers page.
type ListState string

const (
	// ListStateIdle - page created, first load not started
	ListStateIdle ListState = "idle"
	// ListStateLoading - fetch in flight, reload disabled
	ListStateLoading ListState = "loading"
	// ListStateReady - items fetched
	ListStateReady ListState = "ready"
	// ListStateError - fetch failed, message shown in place
	ListStateError ListState = "error"
	// ListStateRedirecting - session rejected, going back to login
	ListStateRedirecting ListState = "redirecting"
)

type ListStatus struct {
	State ListState
	Error string
	Items []VirtualCenter
}

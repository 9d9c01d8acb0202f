package models

import "strings"

// Credentials holds the values typed in the login form.
// They only live for the duration of a login submission.
type Credentials struct {
	BaseURL  string
	Username string
	Password string
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	BaseURL  string `json:"baseUrl,omitempty"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest builds the request body. A blank base url is left out of the payload.
func (c Credentials) LoginRequest() LoginRequest {
	return LoginRequest{
		BaseURL:  strings.TrimSpace(c.BaseURL),
		Username: c.Username,
		Password: c.Password,
	}
}

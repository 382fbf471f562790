// Package tracker defines the connection settings handed to the issue-tracker
// client: where the tracker lives, how to authenticate, and request limits.
package tracker

import (
	"net/http"
	"strings"
	"time"
)

// CredentialKind selects how requests authenticate.
type CredentialKind int

const (
	Anonymous CredentialKind = iota
	APIToken
	PersonalAccessToken
)

func (k CredentialKind) String() string {
	switch k {
	case APIToken:
		return "api-token"
	case PersonalAccessToken:
		return "personal-access-token"
	default:
		return "anonymous"
	}
}

// Credential is one of anonymous, API token with login, or personal access token.
type Credential struct {
	Kind  CredentialKind
	Login string // only set for APIToken
	Token string
}

// NewAPIToken returns a credential for basic auth with a login and API token.
func NewAPIToken(login, token string) Credential {
	return Credential{Kind: APIToken, Login: login, Token: token}
}

// NewPersonalAccessToken returns a bearer-token credential.
func NewPersonalAccessToken(token string) Credential {
	return Credential{Kind: PersonalAccessToken, Token: token}
}

// Apply sets the Authorization header on req. Anonymous leaves req untouched.
func (c Credential) Apply(req *http.Request) {
	switch c.Kind {
	case APIToken:
		req.SetBasicAuth(c.Login, c.Token)
	case PersonalAccessToken:
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
}

// String describes the credential without revealing the token.
func (c Credential) String() string {
	switch c.Kind {
	case APIToken:
		return "api-token (" + c.Login + ", " + redact(c.Token) + ")"
	case PersonalAccessToken:
		return "personal-access-token (" + redact(c.Token) + ")"
	default:
		return "anonymous"
	}
}

// redact keeps the last four characters of long tokens.
func redact(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", 8) + token[len(token)-4:]
}

// ClientConfig is everything the tracker client needs to talk to the server.
type ClientConfig struct {
	URL             string // canonical, no trailing slash
	Credential      Credential
	MaxQueryResults uint32
	Timeout         time.Duration
}

// BrowseURL returns the web page of an issue.
func (c ClientConfig) BrowseURL(issueKey string) string {
	return c.URL + "/browse/" + issueKey
}

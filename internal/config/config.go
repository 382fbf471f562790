package config

import (
	"math"
	"strings"
	"time"

	"github.com/Raunow/jig/internal/tracker"
)

// Defaults for optional numeric settings.
const (
	DefaultMaxQueryResults uint32 = 50
	DefaultTimeoutSeconds  uint64 = 10
)

// MaxTimeoutSeconds is the largest timeout that fits in a time.Duration.
const MaxTimeoutSeconds = uint64(math.MaxInt64 / int64(time.Second))

// MergeDepth is how many container levels of the workspace layer are merged
// into the global layer before nested values are replaced wholesale.
const MergeDepth = 3

// RawConfig is the decoded form of a config file (or of the merged layers).
// Pointer fields are optional; nil means not set.
type RawConfig struct {
	JiraURL    string `toml:"jira_url"`
	IssueQuery string `toml:"issue_query"`
	RetryQuery string `toml:"retry_query"`

	UserLogin *string `toml:"user_login"`
	APIToken  *string `toml:"api_token"`
	PATToken  *string `toml:"pat_token"`

	AlwaysConfirmDate      *bool `toml:"always_confirm_date"`
	AlwaysShortBranchNames *bool `toml:"always_short_branch_names"`
	EnableCommentPrompts   *bool `toml:"enable_comment_prompts"`
	OneTransitionAutoMove  *bool `toml:"one_transition_auto_move"`
	InclusiveFilters       *bool `toml:"inclusive_filters"`

	MaxQueryResults *uint32 `toml:"max_query_results"`
	Timeout         *uint64 `toml:"timeout"` // seconds
}

// requiredKeys must be present in the decoded tree.
var requiredKeys = []string{"jira_url", "issue_query", "retry_query"}

// Config is the resolved configuration used by commands.
type Config struct {
	IssueQuery string
	RetryQuery string

	AlwaysConfirmDate      *bool
	AlwaysShortBranchNames *bool
	EnableCommentPrompts   *bool
	OneTransitionAutoMove  *bool
	InclusiveFilters       *bool

	Tracker tracker.ClientConfig
}

// Resolve validates raw and builds the resolved configuration: the URL is
// normalized, the credential is chosen, and defaults are applied.
func Resolve(raw RawConfig) (*Config, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}

	maxResults := DefaultMaxQueryResults
	if raw.MaxQueryResults != nil {
		maxResults = *raw.MaxQueryResults
	}
	timeout := DefaultTimeoutSeconds
	if raw.Timeout != nil {
		timeout = *raw.Timeout
	}

	return &Config{
		IssueQuery:             raw.IssueQuery,
		RetryQuery:             raw.RetryQuery,
		AlwaysConfirmDate:      raw.AlwaysConfirmDate,
		AlwaysShortBranchNames: raw.AlwaysShortBranchNames,
		EnableCommentPrompts:   raw.EnableCommentPrompts,
		OneTransitionAutoMove:  raw.OneTransitionAutoMove,
		InclusiveFilters:       raw.InclusiveFilters,
		Tracker: tracker.ClientConfig{
			URL:             NormalizeURL(raw.JiraURL),
			Credential:      credential(raw),
			MaxQueryResults: maxResults,
			Timeout:         time.Duration(timeout) * time.Second,
		},
	}, nil
}

// credential picks the auth mode. A personal access token wins over an API
// token; anonymous is only reachable if validation was skipped.
func credential(raw RawConfig) tracker.Credential {
	switch {
	case raw.PATToken != nil:
		return tracker.NewPersonalAccessToken(*raw.PATToken)
	case raw.APIToken != nil:
		login := ""
		if raw.UserLogin != nil {
			login = *raw.UserLogin
		}
		return tracker.NewAPIToken(login, *raw.APIToken)
	default:
		return tracker.Credential{Kind: tracker.Anonymous}
	}
}

// NormalizeURL prefixes https:// when no http scheme is present and strips
// one trailing slash.
func NormalizeURL(raw string) string {
	if !strings.HasPrefix(raw, "http") {
		raw = "https://" + raw
	}
	return strings.TrimSuffix(raw, "/")
}

// ShouldConfirmDate returns always_confirm_date, defaulting to false.
func (c *Config) ShouldConfirmDate() bool {
	return boolOr(c.AlwaysConfirmDate, false)
}

// ShouldShortenBranchNames returns always_short_branch_names, defaulting to false.
func (c *Config) ShouldShortenBranchNames() bool {
	return boolOr(c.AlwaysShortBranchNames, false)
}

// ShouldPromptComments returns enable_comment_prompts, defaulting to false.
func (c *Config) ShouldPromptComments() bool {
	return boolOr(c.EnableCommentPrompts, false)
}

// ShouldAutoMoveSingleTransition returns one_transition_auto_move, defaulting to false.
func (c *Config) ShouldAutoMoveSingleTransition() bool {
	return boolOr(c.OneTransitionAutoMove, false)
}

// ShouldUseInclusiveFilters returns inclusive_filters, defaulting to false.
func (c *Config) ShouldUseInclusiveFilters() bool {
	return boolOr(c.InclusiveFilters, false)
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// Effective returns the resolved settings in file form, for display.
// Defaults are filled in and tokens are masked.
func (c *Config) Effective() RawConfig {
	maxResults := c.Tracker.MaxQueryResults
	timeout := uint64(c.Tracker.Timeout / time.Second)
	raw := RawConfig{
		JiraURL:                c.Tracker.URL,
		IssueQuery:             c.IssueQuery,
		RetryQuery:             c.RetryQuery,
		AlwaysConfirmDate:      c.AlwaysConfirmDate,
		AlwaysShortBranchNames: c.AlwaysShortBranchNames,
		EnableCommentPrompts:   c.EnableCommentPrompts,
		OneTransitionAutoMove:  c.OneTransitionAutoMove,
		InclusiveFilters:       c.InclusiveFilters,
		MaxQueryResults:        &maxResults,
		Timeout:                &timeout,
	}

	mask := "********"
	switch cred := c.Tracker.Credential; cred.Kind {
	case tracker.PersonalAccessToken:
		raw.PATToken = &mask
	case tracker.APIToken:
		login := cred.Login
		raw.UserLogin = &login
		raw.APIToken = &mask
	}
	return raw
}

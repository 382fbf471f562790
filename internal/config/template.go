package config

const defaultConfig = `# jig configuration
#
# Global settings live here. A .jig.toml at the root of a git repository
# overrides any of these keys for that repository.

# Tracker base URL. https:// is assumed when no scheme is given.
jira_url = "jira.example.com"

# JQL used to list issues to pick from.
issue_query = "assignee = currentUser() AND resolution = Unresolved ORDER BY updated DESC"

# JQL used when issue_query returns nothing.
retry_query = "assignee = currentUser() ORDER BY updated DESC"

# Credentials: set pat_token, OR both user_login and api_token.
# pat_token = ""
# user_login = "me@example.com"
# api_token = ""

# max_query_results = 50
# timeout = 10  # seconds

# always_confirm_date = false
# always_short_branch_names = false
# enable_comment_prompts = false
# one_transition_auto_move = false
# inclusive_filters = false
`

const defaultLocalConfig = `# jig workspace config (per-repo overrides)
# Place this file at the repository root as .jig.toml.
# Keys set here override the global config for this repository only.

# issue_query = "project = JIG AND assignee = currentUser()"
# retry_query = "project = JIG"
`

// DefaultConfig returns the global configuration template content.
func DefaultConfig() string {
	return defaultConfig
}

// DefaultLocalConfig returns the workspace configuration template content.
func DefaultLocalConfig() string {
	return defaultLocalConfig
}

// Package config handles loading and validation of jig configuration.
//
// Configuration is layered from two TOML files:
//
//   - Global: <user config dir>/jig/config.toml (e.g. ~/.config/jig/config.toml)
//   - Workspace: .jig.toml at the nearest ancestor containing .git,
//     or the current directory if there is none
//
// Each layer is read and parsed independently. When both parse, they are
// merged with [tree.Merge] at depth [MergeDepth], the workspace winning on
// conflict. When only one parses, it is used on its own. When neither does,
// the global layer's error is returned.
//
// # Keys
//
//	jira_url = "jira.example.com"       # required; https:// added, trailing / dropped
//	issue_query = "assignee = currentUser()"  # required
//	retry_query = "project = JIG"       # required
//	user_login = "me@example.com"       # required with api_token
//	api_token = "..."                   # requires user_login
//	pat_token = "..."                   # takes priority over api_token
//	max_query_results = 50              # default 50
//	timeout = 10                        # seconds, default 10
//	always_confirm_date = false
//	always_short_branch_names = false
//	enable_comment_prompts = false
//	one_transition_auto_move = false
//	inclusive_filters = false
//
// Unknown keys are an error, not ignored.
package config

package config

import "fmt"

// Validate checks the credential fields of raw. Exactly one of the following
// must hold: pat_token is set, or api_token and user_login are both set.
// pat_token needs neither of the others.
func Validate(raw RawConfig) error {
	switch {
	case raw.PATToken == nil && raw.APIToken == nil:
		return fmt.Errorf("%w: no credential specified (neither api_token nor pat_token)", ErrInvalid)
	case raw.APIToken != nil && raw.UserLogin == nil:
		return fmt.Errorf("%w: login required with api token ('user_login' missing)", ErrInvalid)
	case raw.APIToken == nil && raw.UserLogin != nil:
		return fmt.Errorf("%w: api token required with login ('api_token' missing)", ErrInvalid)
	}
	return nil
}

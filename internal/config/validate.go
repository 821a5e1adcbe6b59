package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if !c.Auth.HasAuth0() && !c.Auth.HasDevTokens() {
		return fmt.Errorf("at least one identity verifier must be configured (Auth0 domain or dev token secret)")
	}

	if c.Auth.HasDevTokens() && len(c.Auth.DevTokenSecret) < 32 {
		return fmt.Errorf("auth.dev_token_secret must be at least 32 characters (got %d)", len(c.Auth.DevTokenSecret))
	}

	if err := c.League.validate(); err != nil {
		return fmt.Errorf("league: %w", err)
	}

	return nil
}

func (l *LeagueConfig) validate() error {
	if l.Season <= 0 {
		return fmt.Errorf("season must be > 0 (got %d)", l.Season)
	}
	if l.PickLimit <= 0 {
		return fmt.Errorf("pick_limit must be > 0 (got %d)", l.PickLimit)
	}
	if l.LockGraceWindow < 0 {
		return fmt.Errorf("lock_grace_window must be >= 0 (got %v)", l.LockGraceWindow)
	}
	return nil
}

package journal

import "nbcli/core/database"

// Config holds configuration for the action journal.
type Config struct {
	// Enabled turns journaling of rename and delete actions on.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Config is the journal database connection.
	database.Config `mapstructure:",squash"`
}

// Package config holds runtime settings parsed from startup flags.
// The tracker keeps no config files and reads no environment variables.
package config

// Config holds runtime settings.
type Config struct {
	// Quiet suppresses the interactive prompt, the farewell line, and
	// informational confirmations outside the tracker's feedback lines.
	Quiet bool

	// Debug echoes parsed commands to stderr.
	Debug bool
}

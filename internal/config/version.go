package config

// Build information, set with -ldflags "-X" at release time
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

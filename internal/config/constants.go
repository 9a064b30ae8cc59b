package config

const (
	AppName    = "wordnest"
	AppVersion = "1.0.0"
)

const (
	DefaultServerPort          = ":8080"
	DefaultLogLevel            = "info"
	DefaultTokenTTLMinutes     = 60
	DefaultRecentActivityLimit = 5
	DefaultMaxResultsLimit     = 50
	DefaultImportMaxRows       = 1000
	DefaultTTSTimeoutSeconds   = 10
)

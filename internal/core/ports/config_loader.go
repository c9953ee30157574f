package ports

// Config is the ambient tool configuration this module reads at
// startup — the log level, which manifest file to load by default, and
// which targets to build when none are named on the command line. It
// is deliberately not the build manifest itself: manifest syntax is
// owned entirely by internal/adapters/manifest (spec.md §4.5).
type Config struct {
	LogLevel        string
	DefaultManifest string
	DefaultTargets  []string
}

// ConfigLoader defines the interface for loading the ambient tool
// configuration from a working directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads configuration rooted at cwd, returning defaults when no
	// config file is present.
	Load(cwd string) (*Config, error)
}

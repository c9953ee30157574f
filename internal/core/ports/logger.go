// Package ports defines the interfaces this module's core depends on
// but does not implement itself — the adapters under
// internal/adapters/ provide them.
package ports

// Logger defines the interface for ambient logging. Never used for
// control flow — only for observability (e.g. rule redefinition,
// parser diagnostics a caller chose to log instead of failing on).
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}

// Package logging configures the process-wide slog logger and provides
// attribute helpers shared by every component.
//
// Two output formats are supported: "console" (text, for interactive use) and
// "json" (for log shipping). When a log directory is configured, output also
// lands in docket.log inside it. Components derive their loggers through
// NewComponentLogger so every record carries a component attribute.
package logging

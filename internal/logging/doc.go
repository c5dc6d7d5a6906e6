// Package logging provides the slog setup for runtime discovery.
//
// Discovery is deliberately quiet at its surface: a root that cannot
// be probed is skipped, not reported. This package is where those skip
// decisions become observable — the scanner receives a logger and
// narrates at Debug ([LevelTrace] for the per-directory walk), while
// the CLI keeps the console at Warn unless -v is given.
//
// The console handler colorizes when the writer is a terminal and
// masks credential-shaped attribute values; pair it with the JSON
// handler via [NewMultiHandler] for --log-file. Tests pass [ForTest]
// into the scanner so probe traces land in t.Log:
//
//	scanner := scan.NewScanner(env, scan.Options{Logger: logging.ForTest(t)})
package logging

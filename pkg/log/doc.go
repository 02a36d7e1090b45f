// Package log provides a machine-readable event trace for meshnode instances.
//
// This package defines the Logger interface and Event types for capturing
// lifecycle transitions, callback registry activity, scan dispatches and
// errors. It is separate from operational logging (slog): the trace is a
// complete record of what an instance did, suitable for offline analysis
// with the meshnode-log tool.
//
// # Basic Usage
//
// Applications configure tracing by providing a Logger implementation in
// the instance configuration:
//
//	// For development: print trace events via slog
//	cfg.EventLogger = log.NewSlogAdapter(slog.Default())
//
//	// For production: write to a binary file
//	cfg.EventLogger, _ = log.NewFileLogger("/var/lib/meshnode/trace.mnlog")
//
//	// Both
//	cfg.EventLogger = log.NewMultiLogger(console, file)
//
// # File Format
//
// Trace files are a concatenation of CBOR-encoded events with the .mnlog
// extension. Use Reader (optionally with a Filter) to iterate them.
package log

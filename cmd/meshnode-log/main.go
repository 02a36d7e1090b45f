// Command meshnode-log views and analyzes meshnode trace files.
//
// Trace files are written by meshnode when started with the -trace flag.
//
// Usage:
//
//	meshnode-log <command> [flags] <file.mnlog>
//
// Commands:
//
//	view     View trace file in human-readable format
//	export   Export trace file to JSONL or CSV format
//	stats    Show statistics about the trace file
//
// Examples:
//
//	# View all events
//	meshnode-log view node.mnlog
//
//	# View only scan results
//	meshnode-log view --category scan node.mnlog
//
//	# Export to CSV
//	meshnode-log export --format csv -o node.csv node.mnlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/meshnode/meshnode-go/cmd/meshnode-log/commands"
)

const usage = `meshnode-log - meshnode Trace Analyzer

Usage:
  meshnode-log <command> [flags] <file.mnlog>

Commands:
  view     View trace file in human-readable format
  export   Export trace file to JSONL or CSV format
  stats    Show statistics about the trace file

Use "meshnode-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `meshnode-log view - View trace file in human-readable format

Usage:
  meshnode-log view [flags] <file.mnlog>

Flags:
`)
		fs.PrintDefaults()
	}

	instanceID := fs.String("instance", "", "Filter by instance ID")
	layer := fs.String("layer", "", "Filter by layer (instance, settings, netif, scan)")
	category := fs.String("category", "", "Filter by category (state, callback, scan, error)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	filter := commands.ViewFilter{InstanceID: *instanceID}

	if *layer != "" {
		l, err := commands.ParseLayerFlag(*layer)
		if err != nil {
			fail(err)
		}
		filter.Layer = &l
	}

	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			fail(err)
		}
		filter.Category = &c
	}

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `meshnode-log export - Export trace file to JSONL or CSV format

Usage:
  meshnode-log export [flags] <file.mnlog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if err := commands.RunExport(path, *format, *output); err != nil {
		fail(err)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `meshnode-log stats - Show statistics about the trace file

Usage:
  meshnode-log stats <file.mnlog>

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fail(err)
	}
}

func requirePath(fs *flag.FlagSet) string {
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/meshnode/meshnode-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByLayer    map[log.Layer]int
	EventsByCategory map[log.Category]int
	Instances        map[string]*InstanceStats
	Errors           int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// InstanceStats holds statistics for a single instance.
type InstanceStats struct {
	FirstSeen   time.Time
	LastSeen    time.Time
	Events      int
	Inits       int
	ScanResults int
	Registered  int
	Rejected    int
	LastRole    string
}

// CollectStats reads every event in path.
func CollectStats(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByLayer:    make(map[log.Layer]int),
		EventsByCategory: make(map[log.Category]int),
		Instances:        make(map[string]*InstanceStats),
	}

	for event, err := range reader.All() {
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}
	return stats, nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByLayer[event.Layer]++
	s.EventsByCategory[event.Category]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	inst, ok := s.Instances[event.InstanceID]
	if !ok {
		inst = &InstanceStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
		s.Instances[event.InstanceID] = inst
	}
	inst.Events++
	if event.Timestamp.After(inst.LastSeen) {
		inst.LastSeen = event.Timestamp
	}

	switch {
	case event.StateChange != nil:
		sc := event.StateChange
		switch sc.Entity {
		case log.StateEntityInstance:
			if sc.NewState == "INITIALIZED" {
				inst.Inits++
			}
		case log.StateEntityRole:
			inst.LastRole = sc.NewState
		}
	case event.Callback != nil:
		switch event.Callback.Action {
		case log.CallbackRegistered:
			inst.Registered++
		case log.CallbackRejected:
			inst.Rejected++
		}
	case event.Scan != nil:
		if !event.Scan.Done {
			inst.ScanResults++
		}
	case event.Error != nil:
		s.Errors++
	}
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := CollectStats(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== meshnode Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Layer:")
	for _, layer := range []log.Layer{log.LayerInstance, log.LayerSettings, log.LayerNetif, log.LayerScan} {
		if count := stats.EventsByLayer[layer]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", layer.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryState, log.CategoryCallback, log.CategoryScan, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Instances: %d\n", len(stats.Instances))
	if len(stats.Instances) > 0 {
		type instInfo struct {
			id    string
			stats *InstanceStats
		}
		insts := make([]instInfo, 0, len(stats.Instances))
		for id, is := range stats.Instances {
			insts = append(insts, instInfo{id, is})
		}
		sort.Slice(insts, func(i, j int) bool {
			return insts[i].stats.FirstSeen.Before(insts[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, in := range insts {
			duration := in.stats.LastSeen.Sub(in.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", shortenID(in.id), in.stats.Events, duration)
			fmt.Fprintf(w, "           Inits: %d  Callbacks: %d registered, %d rejected\n",
				in.stats.Inits, in.stats.Registered, in.stats.Rejected)
			if in.stats.ScanResults > 0 {
				fmt.Fprintf(w, "           Scan results: %d\n", in.stats.ScanResults)
			}
			if in.stats.LastRole != "" {
				fmt.Fprintf(w, "           Last role: %s\n", in.stats.LastRole)
			}
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}

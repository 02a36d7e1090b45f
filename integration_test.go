//go:build !multiinstance

package meshnode_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/enbility/zeroconf/v3"

	"github.com/meshnode/meshnode-go/pkg/instance"
	"github.com/meshnode/meshnode-go/pkg/log"
	"github.com/meshnode/meshnode-go/pkg/mle"
	"github.com/meshnode/meshnode-go/pkg/netif"
	"github.com/meshnode/meshnode-go/pkg/scan"
	"github.com/meshnode/meshnode-go/pkg/settings"
)

// TestE2E_PersistenceAcrossRestart stores network info, finalizes the
// instance and brings up a fresh one over the same SQLite database.
func TestE2E_PersistenceAcrossRestart(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "settings.db")

	store := settings.NewSQLiteStore(dsn)
	defer store.Close()

	inst := instance.InitSingle(instance.Config{Settings: store, AutoStart: true})
	if got := inst.Role(); got != mle.RoleDetached {
		t.Fatalf("Role after auto-start: expected DETACHED, got %s", got)
	}
	if !inst.IP6().IsEnabled() {
		t.Fatal("IP6 should be enabled after auto-start")
	}

	roles := inst.Roles().(*mle.RoleManager)
	info := mle.NetworkInfo{NetworkName: "e2e", Channel: 20, PanID: 0xbeef, KeySequence: 7}
	if err := roles.Store(info); err != nil {
		t.Fatalf("Failed to store network info: %v", err)
	}
	keys := roles.Keys()

	// Erase is rejected while the protocol runs.
	if err := inst.ErasePersistentInfo(); !errors.Is(err, instance.ErrInvalidState) {
		t.Fatalf("Erase while detached: expected ErrInvalidState, got %v", err)
	}

	inst.Finalize()
	if inst.IsInitialized() {
		t.Fatal("Instance should be uninitialized after Finalize")
	}

	// Reopen the database from scratch, as a rebooted process would.
	store2 := settings.NewSQLiteStore(dsn)
	defer store2.Close()

	inst = instance.InitSingle(instance.Config{Settings: store2})
	defer inst.Finalize()

	if got := inst.Role(); got != mle.RoleDisabled {
		t.Errorf("Role without auto-start: expected DISABLED, got %s", got)
	}
	restored, ok := inst.Roles().(*mle.RoleManager).NetworkInfo()
	if !ok {
		t.Fatal("Network info was not restored")
	}
	if restored.NetworkName != "e2e" || restored.PanID != 0xbeef {
		t.Errorf("Restored info mismatch: %+v", restored)
	}
	if inst.Roles().(*mle.RoleManager).Keys() != keys {
		t.Error("Derived keys differ after restart")
	}

	if err := inst.ErasePersistentInfo(); err != nil {
		t.Fatalf("Erase while disabled: %v", err)
	}
	var after mle.NetworkInfo
	if err := settings.Load(store2, settings.KeyNetworkInfo, &after); !errors.Is(err, settings.ErrNotFound) {
		t.Errorf("Network info after erase: expected ErrNotFound, got %v", err)
	}
}

// TestE2E_CallbacksAndTrace registers state-changed callbacks, drives the
// instance through bring-up and checks both the callbacks and the trace.
func TestE2E_CallbacksAndTrace(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "e2e"+log.FileExtension)
	fl, err := log.NewFileLogger(tracePath)
	if err != nil {
		t.Fatalf("Failed to create trace: %v", err)
	}

	inst := instance.InitSingle(instance.Config{EventLogger: fl})

	var got []instance.Flags
	record := instance.HandlerFunc(func(flags instance.Flags, _ any) { got = append(got, flags) })
	for i := range instance.MaxStateChangedCallbacks {
		if err := inst.RegisterStateChangedCallback(record, i); err != nil {
			t.Fatalf("Register %d: %v", i, err)
		}
	}
	if err := inst.RegisterStateChangedCallback(record, "one too many"); !errors.Is(err, instance.ErrNoBufs) {
		t.Fatalf("Register into full table: expected ErrNoBufs, got %v", err)
	}

	if err := inst.IP6().SetEnabled(true); err != nil {
		t.Fatalf("IP6 up: %v", err)
	}
	if len(got) != instance.MaxStateChangedCallbacks {
		t.Fatalf("Expected %d deliveries, got %d", instance.MaxStateChangedCallbacks, len(got))
	}
	for _, flags := range got {
		if !flags.Has(netif.FlagIP6Enabled) {
			t.Errorf("Expected IP6 flag, got %s", flags)
		}
	}

	inst.Finalize()
	if err := fl.Close(); err != nil {
		t.Fatalf("Close trace: %v", err)
	}

	r, err := log.NewReader(tracePath)
	if err != nil {
		t.Fatalf("Open trace: %v", err)
	}
	defer r.Close()

	var events int
	for {
		if _, err := r.Next(); err != nil {
			break
		}
		events++
	}
	if events == 0 {
		t.Error("Trace is empty")
	}
}

// TestE2E_ActiveScan advertises a border agent over mDNS and scans for it.
func TestE2E_ActiveScan(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	server, err := zeroconf.Register(
		"meshnode-e2e",
		scan.ServiceTypeBorderAgent,
		scan.Domain,
		49191,
		[]string{"nn=e2e-net", "xp=dead00beef00cafe", "pi=0x4321", "ch=15", "tv=1.3.0"},
		nil,
	)
	if err != nil {
		t.Fatalf("Failed to register border agent: %v", err)
	}
	defer server.Shutdown()

	// Give mDNS time to propagate
	time.Sleep(500 * time.Millisecond)

	inst := instance.InitSingle(instance.DefaultConfig())
	defer inst.Finalize()

	var mu sync.Mutex
	var found []*instance.ActiveScanResult
	done := false
	inst.RegisterActiveScanCallback(func(result *instance.ActiveScanResult, _ any) {
		if result == nil {
			done = true
			return
		}
		found = append(found, result)
	}, nil)

	scanner := scan.NewMDNSActiveScanner(inst, scan.MDNSConfig{
		Duration: 3 * time.Second,
		Dispatch: func(fn func()) {
			mu.Lock()
			defer mu.Unlock()
			fn()
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := scanner.Scan(ctx); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if !done {
		t.Error("Scan did not deliver the end marker")
	}
	var match *instance.ActiveScanResult
	for _, r := range found {
		if r.NetworkName == "e2e-net" {
			match = r
		}
	}
	if match == nil {
		t.Fatalf("Border agent not found among %d results", len(found))
	}
	if match.PanID != 0x4321 || match.Channel != 15 {
		t.Errorf("Result mismatch: %+v", match)
	}
	if match.Port != 49191 {
		t.Errorf("Port mismatch: expected 49191, got %d", match.Port)
	}
}

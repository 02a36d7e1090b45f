// Package instance implements the lifecycle core of a meshnode stack
// instance.
//
// An Instance owns a memory region (backing its message pool), runs the
// bring-up sequence after construction, keeps a bounded table of
// state-changed callbacks and two single-subscriber scan result slots, and
// tears everything down again on Finalize.
//
// Two storage strategies exist and are chosen at build time:
//
//   - default build: exactly one Instance lives in a package-level cell.
//     Use InitSingle to create it and Get to reach it.
//   - build tag multiinstance: callers supply the region with Init (or
//     TryInit) and may run several instances side by side.
//
// The package does no locking. All calls on an Instance, including the
// Invoke*ScanCallback entry points used by scanners, must come from a
// single goroutine.
//
// Collaborators (settings, role manager, IP interface, mesh protocol,
// notifier, platform reset) are interfaces in Config. Nil collaborators are
// replaced by the reference implementations from pkg/settings, pkg/mle,
// pkg/ip6, pkg/mesh, pkg/netif and pkg/platform, wired over one notifier.
package instance

// Package netif provides the state-change notifier of the network
// interface.
//
// Subsystems report changes by calling Signal with a set of Flags. The
// Notifier delivers the accumulated flags to every registered Callback
// slot in registration order. Callback slots are owned by the caller (the
// instance keeps a fixed table of them); the Notifier only stores
// pointers, so registration never allocates.
//
// Delivery is run-to-completion: a Signal raised from inside a callback is
// folded into the current delivery loop instead of recursing.
package netif

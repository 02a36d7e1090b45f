// Package mle tracks the device's network role and the network information
// persisted across restarts.
//
// The RoleManager does not run the attach protocol. It holds the current
// Role, restores NetworkInfo from the settings store during bring-up, and
// derives the per-purpose keys used by the link and MLE layers from the
// restored network key.
package mle

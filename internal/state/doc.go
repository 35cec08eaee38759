// Package state holds the catalog snapshot catalogd serves.
//
// The seed loader and the file watcher write through Update; HTTP handlers
// read through Snapshot and Lookup from their own goroutines. A sync.RWMutex
// guards the snapshot and every read hands out a deep copy, so a handler can
// encode products while a reload is swapping them.
//
// Update keeps the previous products when it is given an error. A broken edit
// to the seed file therefore leaves the last good catalog online and records
// the failure for /healthz:
//
//	store.Update(products, "seed.yaml", nil) // replaces products
//	store.Update(nil, "seed.yaml", err)      // keeps products, records err
//
// The zero Store is ready to use.
package state

// Package state shares the featured drink between the background poller and
// the browser.
//
// The poller calls Store.Update after every Random lookup; the UI reads
// Store.Snapshot on its own tick. Both sides run in different goroutines, so
// the Store guards its snapshot with a read/write mutex and hands out copies:
// a Snapshot never aliases the drink map held by the Store.
//
// Because the client collapses every failure to nil, the store cannot tell a
// network error from an empty answer. Both count as a miss, and two misses in
// a row mark the snapshot offline.
package state

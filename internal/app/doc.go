// Package app wires configuration, the API client, the featured-drink poller
// and the UI into a browsing session.
//
// Run is the composition root for the browse command:
//
//  1. Open the session log; the TUI owns the terminal, so log lines go to a file
//  2. Build the transport (rate limit and optional request metrics)
//  3. Build the cocktaildb client from the loaded config
//  4. Create the shared state.Store
//  5. Start the poller that asks for a random drink every poll_interval
//  6. Start the TUI and block until the user quits or the context ends
//
// When a metrics address is set, the session's Prometheus registry is
// served at /metrics for as long as Run is active.
//
// The poller never fails. A refresh that comes back empty is recorded as a
// miss in the store, which keeps the previous drink and lets the header flag
// the API as unreachable after repeated misses.
package app

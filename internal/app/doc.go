// Package app is carlot's composition root.
//
// Run wires the pieces together in this order:
//
//  1. Seed the environment from an optional .env file
//  2. Load and validate config.toml
//  3. Open the zap log file
//  4. Load display preferences
//  5. Open the configured document store (optionally behind Redis)
//  6. Start the one-shot listings load on a background goroutine
//  7. Run the TUI until the user quits
//
// The load never blocks startup. The UI polls state.Store snapshots and shows
// a spinner until the loader has applied its result. A failed load is logged
// with its cause and surfaces in the UI only as the generic message.
//
// Configuration, logging and store construction errors are returned from Run
// and end the program; a failed load does not.
package app

// Package ui is carlot's Bubble Tea terminal interface.
//
// # Model
//
// Model owns no listing data of its own. It polls state.Store on a tick and
// renders the latest Snapshot, so the background loader and the UI never
// share mutable state. Searches are the one write path: pressing enter in
// the search panel stores the query and calls Store.Search synchronously,
// then installs the fresh snapshot immediately.
//
// # Views
//
//   - Listings: a list of "carname model (year)" rows beside a detail card
//     with price, condition, mileage and image reference. While the load is
//     running a spinner is shown; a failed load shows only the generic
//     message; an empty result shows "No car listings available."
//   - Search panel: "/" opens six inputs (Car Name, Model, Year, Price,
//     Condition, Mileage). Tab and shift+tab move between them, enter runs
//     the search, ctrl+c clears the inputs, esc closes without searching.
//   - Logs: "l" tails carlot's own log file through package logtail.
//
// "b" sends the selected listing to the purchase stub and shows its receipt
// in a modal. "T" cycles the theme and persists the choice via package prefs.
//
// # Files
//
//   - ui.go: Model, Options, Update loop and Run
//   - listings.go: list and detail rendering, selection, number formatting
//   - search.go: search panel
//   - modal.go: modal interface and the buy receipt
//   - logs.go: log view
//   - header.go, box.go, help.go: chrome
//   - theme.go, style_helpers.go, keys.go, layout.go: styling and bindings
package ui

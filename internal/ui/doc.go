// Package ui contains the Fyne desktop window for searching liked videos.
// It binds the search field, results table and details pane to the library
// service and runs remote refreshes off the UI goroutine. All UI strings are
// localized via Localization.
package ui

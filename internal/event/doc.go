// Package event defines the scrollgate event bus and event types.
//
// The scroll-lock core publishes lifecycle and transition events so the TUI
// status bar and logs can observe lock state without coupling to the
// coordinator internals. Dispatch is synchronous and in-process: Publish
// calls every matching handler before returning.
package event

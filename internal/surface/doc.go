// Package surface provides in-process scrollable surfaces for the
// scroll-lock coordinator to gate.
//
// [Pane] is a plain scrollable region with a mutable overflow style.
// [Page] is the root scrolling surface: it additionally models a scrollbar
// that occupies layout width while shown, so its content width depends on
// the current overflow style. Hiding overflow removes the scrollbar and
// widens the content area, which is exactly the layout shift the
// coordinator's padding compensation exists to cancel.
package surface

package catalog

// Package catalog holds the in-memory liked-video list and derives the
// displayed view from it: substring search, stable column sorting, and the
// per-column sort indicator state. It is not safe for concurrent use; the
// owner drives it from a single goroutine.

package debounce

// Package debounce provides a cancellable deferred call used to coalesce
// fast successive search input into a single recomputation.

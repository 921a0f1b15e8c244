package library

// Package library coordinates the catalog with the cache file, the remote
// source and the exporter. Presentation layers drive it; it never touches UI
// state and is used from one goroutine at a time, except Fetch which only
// talks to the remote source.

package cache

// Package cache persists the full liked-video list to a single JSON file
// and reads it back on startup. A missing file is a cache miss; an
// unreadable one is reported as a cache-corrupt error that callers treat as
// a miss.

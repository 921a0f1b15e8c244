package export

// Package export writes the current search results or the whole catalog to
// timestamped files in the configured export directory, as JSON or YAML.

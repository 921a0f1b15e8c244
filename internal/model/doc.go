package model

// Package model defines the liked-video record shared across the app, the
// display formatting applied to it, and the sort field and indicator enums
// used by the catalog and the UI.

package config

// Package config holds the user settings persisted in Fyne preferences for
// the desktop app and the environment based configuration of the CLI. Both
// produce an Options snapshot.

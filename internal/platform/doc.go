package platform

// Package platform contains OS integration glue: application data and
// export directories, opening URLs in the default browser, and revealing
// exported files in the system file manager.

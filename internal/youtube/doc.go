package youtube

// Package youtube fetches the signed-in user's liked videos from the YouTube
// Data API v3 and maps API failures onto the application error types.

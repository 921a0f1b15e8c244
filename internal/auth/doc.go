package auth

// Package auth obtains OAuth2 credentials for the YouTube Data API using the
// installed-application flow: a saved token is reused and refreshed, and the
// browser consent flow with a loopback redirect runs only when no usable
// token exists.

package platform

// Package platform contains OS/platform integration glue: filesystem helpers,
// per-user application directories, and validation of external URLs handed to
// the system browser.

// Package server holds the preview HTTP server configuration.
//
// The serve command hosts the static portfolio site together with a small JSON
// API over the published gallery index. This package only defines its settings:
// the listen port and the optional API key guarding the /api routes.
package server

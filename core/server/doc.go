// Package server holds the HTTP server configuration.
//
// While the serve command handles the server startup, this package defines the
// configuration structure: the listen port, the API key protecting every route,
// and the upload body limit for mapping files.
//
// This package is primarily used by the core/config package to embed server
// settings and by the serve command to configure Fiber.
package server

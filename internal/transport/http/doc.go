// Package http contains the HTTP handlers for the analysis report, the
// grouped summaries, the downloadable exports, and the chart pages.
//
// Handlers follow a consistent pattern: a service interface for the data
// they serve, chi sub-routers assembled in Routes(), and RFC 7807 problem
// responses through the shared error handler.
package http

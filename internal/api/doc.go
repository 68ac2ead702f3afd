// Package api serves the record store over HTTP.
//
// Routes:
//
//	GET    /healthz
//	GET    /records
//	GET    /records/{id}
//	POST   /records        201, 409 on duplicate id
//	PUT    /records/{id}   200, 404 when no row matched
//	DELETE /records/{id}   204, 404 when no row matched
//
// Bodies are JSON with snake_case field names. Errors are returned as
// {"error": "..."}.
package api

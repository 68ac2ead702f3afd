// Package store provides CRUD access to the unisex_names table.
//
// Two forms are offered. The path functions (Create, ReadAll, Update,
// Delete) open the SQLite file for a single call, ensure the schema, and
// release the connection before returning; they back the CLI. Repository
// wraps a long-lived *sql.DB and backs the HTTP API.
//
// Update and Delete report the number of affected rows. Zero means no
// record had the given id and is not an error.
package store

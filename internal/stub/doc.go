// Package stub implements an in-process catalog backend speaking the same
// REST API as the production server.
//
// It is served with Fiber and persists films, comments, users, favorites
// and sessions with BoltHold. The stub backs the `whattowatch stub` command
// for local development and the integration tests of the client.
package stub

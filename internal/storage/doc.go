// Package storage provides BoltDB-based persistence for client state that
// must survive restarts.
//
// The token repository keeps the session token issued on login, using
// BoltHold on top of bbolt.
package storage

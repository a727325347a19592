// Package adapter maps backend payloads to client view models and back.
//
// All functions are pure field renames; nothing is derived or validated.
package adapter

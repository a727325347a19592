// Package app wires the catalog client together: token storage, the API
// client, the store and every dispatcher.
package app

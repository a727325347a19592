// Package dto holds the JSON payloads exchanged with the catalog backend.
package dto

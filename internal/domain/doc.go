// Package domain defines the catalog entities and the collaborator
// interfaces the dispatchers depend on.
//
// Entities are client-side view models (Film, Review, User) together with
// the input payloads the mutating dispatchers accept. Interfaces accept
// context for cancellation and timeout support.
package domain

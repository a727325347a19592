// Package store is the central state container of the catalog client.
//
// State is split into slices (one per NameSpace). Dispatchers write to it
// only through typed actions passed to Store.Dispatch; the reducer applies
// them in order and subscribers observe every action with the state it
// produced.
package store

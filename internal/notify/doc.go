// Package notify provides implementations of the user-facing toast channel.
package notify

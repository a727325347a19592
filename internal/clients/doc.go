// Package clients provides the HTTP client for the catalog backend.
//
// APIClient implements domain.Requester: it resolves paths against the
// configured base URL, attaches the stored session token as the X-Token
// header, encodes JSON or multipart bodies and decodes JSON responses.
// Non-2xx responses are reported as *StatusError.
package clients

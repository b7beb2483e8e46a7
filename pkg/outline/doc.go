// Package outline is a read-only client for the Outline document API.
//
// # Overview
//
// Outline exposes an RPC-style HTTP API: every operation is a POST of a JSON
// object to "{base_url}/{endpoint}", and every response is wrapped in an
// envelope:
//
//	{"ok": true, "data": ..., "pagination": {...}}
//	{"ok": false, "error": "Not Found"}
//
// A single Client is created at startup and shared by every operation for the
// lifetime of the process. Client.Execute is the only place that talks to the
// network; the operation methods (SearchDocuments, GetDocument, ...) build the
// endpoint-specific request body, call Execute, and reshape the envelope's
// data into flat, snake_case records that are stable for callers.
//
// # Endpoints Used
//
// Documents:
//   - POST documents.search
//   - POST documents.info
//   - POST documents.list
//   - POST documents.answerQuestion
//   - POST documents.export
//   - POST documents.drafts
//   - POST documents.viewed
//
// Collections:
//   - POST collections.list
//   - POST collections.info
//   - POST collections.documents
//
// Auth:
//   - POST auth.info
//
// # Error Handling
//
// Every failure to talk to Outline is a *RemoteCallError. A non-2xx status
// additionally wraps a *StatusError. There are no retries; a call is
// attempted exactly once.
//
// Missing or unexpectedly typed fields in a response never fail a call. They
// come out as null (or an empty list) in the reshaped record.
package outline

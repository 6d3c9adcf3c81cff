// Package sandbox is an in-memory stand-in for the parts of Diadoc the
// samples talk to: password authentication, title generation, message
// posting and address parsing.
//
// It does not reproduce the service's business rules. It validates just
// enough to catch malformed requests, so the samples and the end-to-end
// tests can run without network access or real credentials. The HTTP
// surface lives in internal/handler/http.
package sandbox

// Package http serves the sandbox over HTTP.
//
// It mirrors the four Diadoc endpoints the samples use: authentication, title
// generation, message posting and address parsing. Every request must carry
// a DiadocAuth header with the sandbox client id; endpoints that act on
// behalf of a user also require a token issued by /V3/Authenticate. Request
// tracing, access logging and gzip compression are handled here before the
// request reaches the sandbox.
package http

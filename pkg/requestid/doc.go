// Package requestid tags every request with an ID for log correlation.
//
// Middleware reuses a client supplied X-Request-ID when it is made of
// letters, digits, '-' and '_' only and is at most 128 characters long.
// Anything else is replaced with a fresh UUID. Add LoggerExtractor to the
// logger so records written with a request context carry request_id.
package requestid

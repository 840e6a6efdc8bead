// Package server exposes the search engine over HTTP with gin.
//
//	GET  /healthz            liveness, and cache connectivity when the store can Ping
//	GET  /v1/algorithms      strategy metadata
//	POST /v1/search          run a search, served from the cache when possible
//	POST /v1/search/stream   run a search and stream visited cells as SSE
//
// Every request gets a run id (uuid v4) that is echoed in the X-Run-ID header
// and attached to the request logger.
package server

package http

import (
	"github.com/indigo-web/utils/strcomp"

	"github.com/indigo-web/wshttp/kv"
)

// Request represents a single parsed HTTP request. It is produced by
// http1.Parse and is never modified afterwards.
type Request struct {
	// Method is the request method token, folded to uppercase.
	Method string
	// Path is the request target, folded to lowercase. Folding the path is a
	// deviation from RFC 9112, where paths are case-sensitive, but clients of
	// the upgrade endpoint rely on it. Don't fix it.
	Path string
	// Proto is the version part of the protocol token, e.g. "1.1" for HTTP/1.1.
	Proto string
	// Headers keeps the header fields with lowercase keys and trimmed values.
	Headers *kv.Storage
}

// SameOrigin tells whether the request was issued by the passed origin. The
// comparison is case-insensitive. A request without an Origin header never
// matches anything.
func SameOrigin(origin string, request *Request) bool {
	value, found := request.Headers.Get("origin")
	if !found {
		return false
	}

	return strcomp.EqualFold(value, origin)
}

// IsUpgrade tells whether the request asks for a protocol upgrade to
// WebSocket. Purely advisory: the actual handshake validation (version, key)
// belongs to the upgrade layer on top.
func (r *Request) IsUpgrade() bool {
	return strcomp.EqualFold(r.Headers.Value("connection"), "upgrade") &&
		strcomp.EqualFold(r.Headers.Value("upgrade"), "websocket")
}

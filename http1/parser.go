package http1

import (
	"strings"

	"github.com/indigo-web/wshttp/http"
	"github.com/indigo-web/wshttp/http/status"
	"github.com/indigo-web/wshttp/kv"
	"github.com/indigo-web/wshttp/latin1"
)

const versionPrefix = "HTTP/"

// Parse parses a single complete request head (request line, header fields and
// the terminating empty line) out of data and returns the structured request.
//
// The whole head must be presented in the buffer at once. Parse doesn't keep
// any state between the calls, so reassembling requests split across multiple
// socket reads is the caller's job. Bodies, if any, are not consumed either.
//
// Duplicated header fields collapse into a single entry, the last occurrence
// wins.
func Parse(data []byte) (*http.Request, error) {
	lines := strings.Split(latin1.Decode(data), "\r\n")

	method, path, proto, err := parseRequestLine(lines[0])
	if err != nil {
		return nil, err
	}

	headers := kv.NewPrealloc(len(lines) - 1)

	for _, line := range lines[1:] {
		if len(line) == 0 {
			// the empty line terminates the head. Whatever follows would be
			// a body, which we by contract don't touch
			break
		}

		colon := strings.IndexByte(line, ':')
		if colon == -1 {
			return nil, status.ErrMalformedHeaderLine
		}

		key := strings.ToLower(strings.TrimSpace(line[:colon]))
		value := strings.TrimSpace(line[colon+1:])
		headers.Set(key, value)
	}

	return &http.Request{
		Method:  method,
		Path:    path,
		Proto:   proto,
		Headers: headers,
	}, nil
}

func parseRequestLine(line string) (method, path, proto string, err error) {
	fields := strings.Split(line, " ")
	if len(fields) != 3 {
		return "", "", "", status.ErrMalformedRequestLine
	}

	version := fields[2]
	if len(fields[0]) == 0 || len(fields[1]) == 0 || !strings.HasPrefix(version, versionPrefix) {
		return "", "", "", status.ErrMalformedRequestLine
	}

	method = strings.ToUpper(fields[0])
	// the target is intentionally case-folded, see http.Request.Path
	path = strings.ToLower(fields[1])
	proto = version[len(versionPrefix):]

	return method, path, proto, nil
}

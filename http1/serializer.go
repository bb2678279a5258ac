package http1

import (
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/indigo-web/utils/ft"
	"github.com/indigo-web/utils/strcomp"
	json "github.com/json-iterator/go"

	"github.com/indigo-web/wshttp/http/status"
	"github.com/indigo-web/wshttp/kv"
)

const (
	responseProto = "HTTP/1.1 "
	contentType   = "Content-Type: "
	contentLength = "Content-Length: "
	colonSP       = ": "
	crlf          = "\r\n"

	// IMF-fixdate, the format every sane HTTP implementation emits.
	dateFormat = "Mon, 02 Jan 2006 15:04:05 GMT"
)

const preallocResponseBuff = 512

// Serializer renders HTTP/1.1 responses into a reused buffer. A response
// always opens with the status line, a Connection: close header (we serve
// exactly one exchange per connection) and a Date header, optionally followed
// by default headers, caller-supplied headers and a body.
//
// The serializer is not safe for concurrent use; give each connection-serving
// goroutine its own instance. The status table, however, may be shared freely
// as long as nobody extends it past setup.
type Serializer struct {
	buff                  []byte
	codes                 *status.Table
	defaultHeaders        []string
	defaultHeadersReserve []string
	now                   func() time.Time
}

// NewSerializer returns a serializer rendering reason phrases from codes.
// defaultHeaders, which may be nil, are included into every response.
func NewSerializer(codes *status.Table, defaultHeaders map[string]string) *Serializer {
	parsed := flattenDefaultHeaders(defaultHeaders)

	return &Serializer{
		buff:                  make([]byte, 0, preallocResponseBuff),
		codes:                 codes,
		defaultHeaders:        parsed,
		defaultHeadersReserve: ft.Map(ft.Nop[string], parsed), // copy the slice
		now:                   time.Now,
	}
}

// TimeSource substitutes the wall clock behind the Date header. Mainly for
// tests.
func (s *Serializer) TimeSource(now func() time.Time) *Serializer {
	s.now = now
	return s
}

// Response renders a bare response: the status line and the fixed headers.
// If done is set, the head is sealed with the empty line and is ready to be
// sent as-is. Otherwise the terminator is omitted, so the caller may append
// further header lines manually before sealing the head itself.
func (s *Serializer) Response(code status.Code, done bool) (string, error) {
	defer s.clear()

	if err := s.renderResponseLine(code); err != nil {
		return "", err
	}

	s.renderDefaultHeaders()

	if done {
		s.crlf()
	}

	return string(s.buff), nil
}

// HTML renders a complete response carrying body as text/html. The announced
// length is the number of characters in the body, which under the module-wide
// one-byte-per-character encoding model equals the number of octets on the
// wire.
func (s *Serializer) HTML(body string, code status.Code) (string, error) {
	defer s.clear()

	if err := s.renderResponseLine(code); err != nil {
		return "", err
	}

	s.renderDefaultHeaders()
	s.renderContentType("text/html")
	s.renderContentLength(utf8.RuneCountInString(body))
	s.crlf()
	s.buff = append(s.buff, body...)

	return string(s.buff), nil
}

// JSON renders a complete response carrying the encoded model as
// application/json.
func (s *Serializer) JSON(model any, code status.Code) (string, error) {
	defer s.clear()

	body, err := json.ConfigDefault.Marshal(model)
	if err != nil {
		return "", err
	}

	if err = s.renderResponseLine(code); err != nil {
		return "", err
	}

	s.renderDefaultHeaders()
	s.renderContentType("application/json")
	s.renderContentLength(utf8.RuneCount(body))
	s.crlf()
	s.buff = append(s.buff, body...)

	return string(s.buff), nil
}

// Headers renders a bodiless response head carrying the passed header fields
// in their insertion order, sealed with the empty line. Caller-supplied
// fields override same-named default headers. The result is designed to be
// concatenated with a separately produced body by the caller.
func (s *Serializer) Headers(code status.Code, headers *kv.Storage) (string, error) {
	defer s.clear()

	if err := s.renderResponseLine(code); err != nil {
		return "", err
	}

	for key, value := range headers.Pairs() {
		s.renderHeader(key, value)
		s.eraseDefaultHeader(key)
	}

	s.renderDefaultHeaders()
	s.crlf()

	return string(s.buff), nil
}

func (s *Serializer) renderResponseLine(code status.Code) error {
	reason, found := s.codes.Reason(code)
	if !found {
		return status.ErrUnknownStatusCode
	}

	s.buff = append(s.buff, responseProto...)
	s.buff = strconv.AppendUint(s.buff, uint64(code), 10)
	s.buff = append(s.buff, ' ')
	s.buff = append(s.buff, reason...)
	s.crlf()
	s.renderHeader("Connection", "close")
	s.renderHeader("Date", s.now().UTC().Format(dateFormat))

	return nil
}

// renderHeader renders the header line into the buffer. Appends CRLF in the end.
func (s *Serializer) renderHeader(key, value string) {
	s.buff = append(s.buff, key...)
	s.buff = append(s.buff, colonSP...)
	s.buff = append(s.buff, value...)
	s.crlf()
}

func (s *Serializer) renderDefaultHeaders() {
	for i := 0; i < len(s.defaultHeaders); i += 2 {
		if len(s.defaultHeaders[i]) == 0 {
			// erased in favour of a caller-supplied header
			continue
		}

		s.renderHeader(s.defaultHeaders[i], s.defaultHeaders[i+1])
	}
}

func (s *Serializer) eraseDefaultHeader(key string) {
	for i := 0; i < len(s.defaultHeaders); i += 2 {
		if strcomp.EqualFold(s.defaultHeaders[i], key) {
			s.defaultHeaders[i] = ""
		}
	}
}

func (s *Serializer) renderContentType(value string) {
	s.buff = append(s.buff, contentType...)
	s.buff = append(s.buff, value...)
	s.crlf()
}

func (s *Serializer) renderContentLength(value int) {
	s.buff = append(s.buff, contentLength...)
	s.buff = strconv.AppendInt(s.buff, int64(value), 10)
	s.crlf()
}

func (s *Serializer) crlf() {
	s.buff = append(s.buff, crlf...)
}

func (s *Serializer) clear() {
	s.buff = s.buff[:0]
	copy(s.defaultHeaders, s.defaultHeadersReserve)
}

func flattenDefaultHeaders(headers map[string]string) []string {
	flat := make([]string, 0, len(headers)*2)

	for key, value := range headers {
		flat = append(flat, key, value)
	}

	return flat
}

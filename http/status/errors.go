package status

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrMalformedRequestLine = NewError(BadRequest, "malformed request line")
	ErrMalformedHeaderLine  = NewError(BadRequest, "malformed header line")
	ErrUnknownStatusCode    = NewError(InternalServerError, "status code is not registered in the table")
)

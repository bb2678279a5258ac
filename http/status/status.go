package status

type (
	Code   uint16
	Status string
)

// The codes this family of servers actually deals with around an upgrade
// handshake. See https://www.iana.org/assignments/http-status-codes for
// the full registry; anything else can be registered on a Table manually.
const (
	SwitchingProtocols Code = 101 // RFC 9110, 15.2.2

	OK      Code = 200 // RFC 9110, 15.3.1
	Created Code = 201 // RFC 9110, 15.3.2

	BadRequest      Code = 400 // RFC 9110, 15.5.1
	Forbidden       Code = 403 // RFC 9110, 15.5.4
	NotFound        Code = 404 // RFC 9110, 15.5.5
	UpgradeRequired Code = 426 // RFC 9110, 15.5.22

	InternalServerError Code = 500 // RFC 9110, 15.6.1
)

// Table maps status codes to their reason phrases. The zero value is unusable;
// NewTable seeds the defaults a pre-upgrade HTTP exchange needs. The table is
// meant to be extended during setup and read-only afterwards, therefore carries
// no lock.
type Table struct {
	reasons map[Code]Status
}

// NewTable returns a table pre-seeded with the default set of codes. Codes
// outside of the default set must be registered via Set before being used
// in a response.
func NewTable() *Table {
	t := &Table{
		reasons: make(map[Code]Status),
	}

	return t.
		Set(OK, "OK").
		Set(BadRequest, "Bad Request").
		Set(Forbidden, "Forbidden").
		Set(NotFound, "Not Found").
		Set(UpgradeRequired, "Upgrade Required")
}

// Set registers the reason phrase for the code, overwriting any previous one.
func (t *Table) Set(code Code, reason Status) *Table {
	t.reasons[code] = reason
	return t
}

// Reason returns the reason phrase of the code and a bool, indicating whether
// the code is registered at all.
func (t *Table) Reason(code Code) (Status, bool) {
	reason, found := t.reasons[code]
	return reason, found
}

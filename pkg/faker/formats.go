package faker

import "golang.org/x/text/cases"

// Format names recognized by the string and number synthesizers.
const (
	FormatDate     = "date"
	FormatDateTime = "date-time"
	FormatEmail    = "email"
	FormatUUID     = "uuid"
	FormatURI      = "uri"
	FormatHostname = "hostname"
	FormatIPv4     = "ipv4"
	FormatIPv6     = "ipv6"
	FormatByte     = "byte"
	FormatBinary   = "binary"
	FormatPassword = "password"

	FormatInt32  = "int32"
	FormatInt64  = "int64"
	FormatFloat  = "float"
	FormatDouble = "double"
)

// staticStrings are the fixed samples for string formats. Password is built
// separately because it depends on minLength.
var staticStrings = map[string]string{
	FormatDate:     "2019-08-24",
	FormatDateTime: "2019-08-24T14:15:22Z",
	FormatEmail:    "user@example.com",
	FormatUUID:     "095be615-a8ad-4c33-8e9c-c7612fbf6c9f",
	FormatURI:      "http://example.com",
	FormatHostname: "example.com",
	FormatIPv4:     "192.168.0.1",
	FormatIPv6:     "2001:0db8:85a3:0000:0000:8a2e:0370:7334",
	FormatByte:     "c3RyaW5n",
	FormatBinary:   "01101000",
}

// staticNumbers are the base samples for numeric formats before range fitting.
var staticNumbers = map[string]float64{
	FormatInt32:  32,
	FormatInt64:  64,
	FormatFloat:  3.2,
	FormatDouble: 6.4,
}

// foldFormat normalizes a format tag for lookup.
func foldFormat(format string) string {
	return cases.Fold().String(format)
}

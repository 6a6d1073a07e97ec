package constants

const (
	DefaultBaseURL   = "https://diavgeia.gov.gr/opendata"
	DefaultYear      = 2015
	DefaultTimezone  = "Europe/Athens"
	DefaultLogLevel  = "warn"
	DefaultUserAgent = "findpayments"
)

const (
	// Results requested per search page, for name and payment searches alike
	PageSize = 50

	// Date Layout
	DateFormat = "02-01-2006"

	// Greek tax ids are exactly nine digits
	AFMLength = 9
)

// CSVHeader is the fixed column order of exported payment files.
var CSVHeader = []string{"ada", "org", "orgafm", "subject", "date", "amount", "url"}

// UTF8BOM prefixes CSV exports so spreadsheet tools detect the encoding.
const UTF8BOM = "\ufeff"

package utils

import (
	"time"

	"github.com/hance08/findpayments/internal/constants"
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with two decimals for terminal output.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatEpochMillis converts a registry timestamp (milliseconds since the
// epoch) to a dd-mm-yyyy date in loc. A nil loc means UTC.
func FormatEpochMillis(ms int64, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return time.UnixMilli(ms).In(loc).Format(constants.DateFormat)
}

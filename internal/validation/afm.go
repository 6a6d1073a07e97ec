package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hance08/findpayments/internal/constants"
)

var ErrInvalidAFM = errors.New("invalid AFM")

// ValidateAFM checks the shape of a Greek tax id: nine digits, nothing else.
// The check digit is not enforced here, see HasValidChecksum.
func ValidateAFM(input string) error {
	afm := strings.TrimSpace(input)

	if afm == "" {
		return fmt.Errorf("%w: AFM can't be empty", ErrInvalidAFM)
	}

	if len(afm) != constants.AFMLength {
		return fmt.Errorf("%w: %q must be %d digits", ErrInvalidAFM, afm, constants.AFMLength)
	}

	for _, c := range afm {
		if c < '0' || c > '9' {
			return fmt.Errorf("%w: %q must contain only digits", ErrInvalidAFM, afm)
		}
	}

	return nil
}

// HasValidChecksum reports whether the ninth digit of afm matches the
// weighted sum of the first eight (powers of two, mod 11, mod 10).
func HasValidChecksum(afm string) bool {
	if ValidateAFM(afm) != nil {
		return false
	}

	afm = strings.TrimSpace(afm)
	sum := 0
	for i := 0; i < constants.AFMLength-1; i++ {
		sum += int(afm[i]-'0') << (constants.AFMLength - 1 - i)
	}

	return (sum%11)%10 == int(afm[constants.AFMLength-1]-'0')
}

// ValidateYear reports years outside the range the registry can hold.
// Diavgeia started publishing in October 2010, so such searches come back empty.
func ValidateYear(year int) error {
	current := time.Now().Year()
	if year < 2010 || year > current {
		return fmt.Errorf("year %d out of range (2010-%d)", year, current)
	}
	return nil
}

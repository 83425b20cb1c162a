// Package expiry formats and checks card expiry dates.
package expiry

import (
	"fmt"
	"time"
)

var defaultLoc = time.UTC

// SetDefaultExpiryLocation sets the time location used for expiry calculations (fallback UTC).
func SetDefaultExpiryLocation(loc *time.Location) {
	if loc != nil {
		defaultLoc = loc
	}
}

// DefaultExpiryLocation returns the location used for expiry calculations.
func DefaultExpiryLocation() *time.Location {
	return defaultLoc
}

// MMYY returns expiry in MMYY for the date the given number of years after
// issue. Calendar overflow normalizes, so Feb 29 plus one year is Mar 1.
func MMYY(issue time.Time, years int) string {
	t := issue.In(defaultLoc).AddDate(years, 0, 0)
	return fmt.Sprintf("%02d%02d", int(t.Month()), t.Year()%100)
}

// Face renders an MMYY value as MM/YY. Values that are not 4 characters long
// are returned unchanged.
func Face(mmyy string) string {
	if len(mmyy) != 4 {
		return mmyy
	}
	return mmyy[:2] + "/" + mmyy[2:]
}

// ValidateMMYY checks that the value is 4 digits with a month in 01..12.
func ValidateMMYY(mmyy string) error {
	if len(mmyy) != 4 {
		return fmt.Errorf("expiry must be MMYY (4 digits)")
	}
	for i := 0; i < 4; i++ {
		if mmyy[i] < '0' || mmyy[i] > '9' {
			return fmt.Errorf("expiry must be digits: MMYY")
		}
	}
	mm := int(mmyy[0]-'0')*10 + int(mmyy[1]-'0')
	if mm < 1 || mm > 12 {
		return fmt.Errorf("expiry month must be 01..12")
	}
	return nil
}

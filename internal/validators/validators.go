package validators

import (
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^(\+92|03)[0-9]{9}$`)

// IsValidPhone accepts Pakistani mobile numbers only.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

var expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)

// IsValidExpiry checks the MM/YY card expiry format.
func IsValidExpiry(expiry string) bool {
	return expiryPattern.MatchString(expiry)
}

// AnyBlank reports whether any of the given fields is empty after
// trimming, the presence check every create/update handler runs.
func AnyBlank(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return true
		}
	}
	return false
}

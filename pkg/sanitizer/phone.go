package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const phoneRegion = "KR"

// NormalizePhone formats a Korean contact number to the digit-grouped
// national form used across the reservation book (010-1234-5678).
// Unparseable input is returned trimmed so validation can reject it.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return ""
	}

	parsed, err := phonenumbers.Parse(phone, phoneRegion)
	if err != nil {
		return phone
	}

	return phonenumbers.Format(parsed, phonenumbers.NATIONAL)
}

package normalize

import (
	"regexp"
	"strings"
)

var (
	phoneExtPattern = regexp.MustCompile(`(?i)(?:ext|x|extension)[\s.:#-]*\d+\s*$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
	lastTenPattern  = regexp.MustCompile(`\d{10}$`)
)

// Phone canonicalizes a NANP phone number to E.164 (+1 plus ten digits).
// Best effort and lossy: extensions are stripped, international dialing
// prefixes reduced, and as a last resort the trailing ten digits are
// taken. Returns the empty string when no ten-digit sequence exists.
func Phone(raw string) string {
	if raw == "" {
		return ""
	}

	digits := nonDigitPattern.ReplaceAllString(phoneExtPattern.ReplaceAllString(raw, ""), "")

	switch {
	case len(digits) == 13 && strings.HasPrefix(digits, "001"):
		digits = digits[3:]
	case len(digits) == 12 && strings.HasPrefix(digits, "01"):
		digits = digits[2:]
	}

	var national string
	switch {
	case len(digits) == 11 && digits[0] == '1':
		national = digits[1:]
	case len(digits) == 10:
		national = digits
	default:
		national = lastTenPattern.FindString(digits)
		if national == "" {
			return ""
		}
	}

	return "+1" + national
}

package vnpay

import (
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripPolicy = bluemonday.StrictPolicy()

var diacriticFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SanitizeOrderInfo prepares free text for vnp_OrderInfo: markup is
// stripped, Vietnamese diacritics are folded to ASCII and whitespace is
// collapsed. The gateway truncates long descriptions, so we cap at 255.
func SanitizeOrderInfo(s string) string {
	s = stripPolicy.Sanitize(s)

	if folded, _, err := transform.String(diacriticFolder, s); err == nil {
		s = folded
	}
	s = strings.Map(func(r rune) rune {
		switch r {
		case 'đ':
			return 'd'
		case 'Đ':
			return 'D'
		}
		return r
	}, s)

	s = strings.Join(strings.Fields(s), " ")
	if len(s) > 255 {
		s = s[:255]
	}
	return s
}

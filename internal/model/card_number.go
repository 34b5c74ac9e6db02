package model

import (
	"net/url"
	"regexp"
	"strings"
)

// cardNumberPattern matches card numbers embedded in image filenames:
// 1-5 uppercase letters, optional digits, a hyphen, 2-3 digits, and an
// optional "_N" suffix marking an alternate-art variant.
// Examples: "EB04-001", "P-006", "OP01-120_2".
var cardNumberPattern = regexp.MustCompile(`[A-Z]{1,5}\d*-\d{2,3}(?:_\d+)?`)

// ExtractSetCode derives the set code from a card number by stripping the
// trailing "-NNN" suffix: "EB04-001" -> "EB04", "P-006" -> "P".
// A string without a hyphen is returned unchanged.
func ExtractSetCode(cardNumber string) string {
	if i := strings.LastIndex(cardNumber, "-"); i >= 0 {
		return cardNumber[:i]
	}
	return cardNumber
}

// CardNumberFromImageURL extracts the card number encoded in an image URL's
// filename. The final path segment is URL-decoded and matched against
// cardNumberPattern.
//
// Example URLs:
//   - .../Picture/1769764571457EB04-001.png      -> "EB04-001"
//   - .../Picture/1674893285473P-006%281%29.jpg  -> "P-006"
//   - .../Picture/1769764571457OP01-120_2.png    -> "OP01-120_2"
//
// It returns the empty string when no card number is present. That is a
// recoverable miss, not an error: list items whose filenames do not encode
// a number simply cannot be correlated with a requested card number.
func CardNumberFromImageURL(imageURL string) string {
	segment := imageURL
	if i := strings.LastIndex(segment, "/"); i >= 0 {
		segment = segment[i+1:]
	}
	if decoded, err := url.PathUnescape(segment); err == nil {
		segment = decoded
	}
	return cardNumberPattern.FindString(segment)
}

// BaseNumber strips the "_N" variant-art suffix from an extracted card
// number: "OP01-120_2" -> "OP01-120". Plain numbers are returned unchanged.
// Searches compare base numbers so that a request for "OP01-120" matches
// any of its alternate arts.
func BaseNumber(number string) string {
	if i := strings.Index(number, "_"); i >= 0 {
		return number[:i]
	}
	return number
}

// HasVariantSuffix reports whether an extracted card number carries a "_N"
// alternate-art suffix. Variant images are stored under their full number
// so they do not overwrite the base art.
func HasVariantSuffix(number string) bool {
	return strings.Contains(number, "_")
}

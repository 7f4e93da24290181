// Package decode turns raw pattern matches into report value objects.
// Every function here is pure: given a cursor string it returns the
// decoded value, how many bytes of the cursor it consumed, and whether
// it matched at all. Decoders never read a clock or any other ambient
// state — callers that need "now" (observation-time reconstruction)
// pass it in explicitly.
package decode

import "strings"

// ocrDigit maps a single rune that OCR commonly confuses with a digit
// back to that digit. Used only where a pattern group accepts the
// letter O in place of a digit (altimeter/cloud-height groups).
func ocrDigit(r rune) rune {
	if r == 'O' {
		return '0'
	}
	return r
}

// fixDigits applies ocrDigit to every rune of s.
func fixDigits(s string) string {
	return strings.Map(ocrDigit, s)
}

// normalizeSkyCover corrects the two OCR sky-cover confusions the
// pattern catalog tolerates at the regex level: "0VC" for "OVC" and
// "SCK" for "SKC". NCD and CLR are left as distinct literal covers;
// the caller maps them to the NSC/CLR report constants.
func normalizeSkyCover(cover string) string {
	switch cover {
	case "0VC":
		return "OVC"
	case "SCK":
		return "SKC"
	default:
		return cover
	}
}

// Package normalizer canonicalizes free-text transaction descriptions into
// stable grouping keys.
//
// Bank and card statements decorate the same merchant with variable noise:
// reference numbers, masked card digits, store numbers. Two cleanup modes are
// provided:
//
//   - PurposeMerchant (expense analysis): strips long digit runs, masked
//     sequences and trailing references, but leaves descriptions containing a
//     known recurring-service name fragment almost untouched. Those names are
//     distinctive enough that aggressive cleanup would wrongly split
//     near-duplicates more often than it would merge unrelated merchants.
//   - PurposeSource (income analysis): always applies a single aggressive
//     cleanup with lower thresholds, since payer descriptions are less
//     variable than merchant POS strings.
//
// Normalization is deterministic and holds no state.
package normalizer

import (
	"regexp"
	"strings"
)

// Purpose selects the cleanup mode for a description.
type Purpose int

const (
	// PurposeMerchant normalizes expense descriptions for merchant grouping.
	PurposeMerchant Purpose = iota
	// PurposeSource normalizes income descriptions for payer grouping.
	PurposeSource
)

var (
	whitespace = regexp.MustCompile(`\s+`)

	// Merchant cleanup: long digit runs, heavy masking, store numbers and
	// trailing reference suffixes.
	merchantDigits = regexp.MustCompile(`\d{6,}`)
	merchantMask   = regexp.MustCompile(`\*{3,}`)
	storeNumber    = regexp.MustCompile(`#\d+`)
	trailingRef    = regexp.MustCompile(`-\d+$`)

	// Source cleanup uses lower thresholds.
	sourceDigits = regexp.MustCompile(`\d{4,}`)
	sourceMask   = regexp.MustCompile(`\*{2,}`)
)

// recurringServiceTokens are name fragments of services that typically bill
// on a cycle: streaming, telecom, gyms, insurance. Descriptions containing
// one of these keep their full text as the grouping key.
var recurringServiceTokens = []string{
	// Streaming and media
	"netflix", "spotify", "disney", "hbo", "youtube", "apple.com", "prime",
	// Telecom
	"cellcom", "partner", "pelephone", "golan", "bezeq", "hot mobile",
	"סלקום", "פרטנר", "פלאפון", "בזק", "הוט",
	// Memberships and recurring services
	"gym", "club", "fitness", "subscription", "membership", "insurance",
	"מנוי", "חדר כושר", "ביטוח", "משכנתא", "עיריית",
}

// Normalize canonicalizes a transaction description into a grouping key for
// the given purpose. Same input and purpose always yield the same key.
func Normalize(description string, purpose Purpose) string {
	key := strings.ToLower(strings.TrimSpace(description))
	key = whitespace.ReplaceAllString(key, " ")

	if purpose == PurposeSource {
		key = sourceDigits.ReplaceAllString(key, "")
		key = sourceMask.ReplaceAllString(key, "")
		return strings.TrimSpace(key)
	}

	// Known recurring services keep the lightly-normalized text.
	for _, token := range recurringServiceTokens {
		if strings.Contains(key, token) {
			return key
		}
	}

	key = merchantDigits.ReplaceAllString(key, "")
	key = merchantMask.ReplaceAllString(key, "")
	key = storeNumber.ReplaceAllString(key, "")
	key = trailingRef.ReplaceAllString(key, "")
	key = whitespace.ReplaceAllString(key, " ")
	return strings.TrimSpace(key)
}

package extract

import (
	"regexp"
	"strings"

	"github.com/pennywiseai/smsledger/internal/pattern"
)

// UnknownMerchant is the documented default when an amount is present but
// no payee can be identified. The record is still emitted: a financially
// meaningful amount is never discarded over a missing companion field.
const UnknownMerchant = "Unknown Merchant"

var maskedCardRe = regexp.MustCompile(`(?:xx|XX|\*{2,})?\d{4}`)

var stopWords = map[string]struct{}{
	"using": {}, "via": {}, "through": {}, "by": {}, "with": {},
	"for": {}, "to": {}, "from": {}, "at": {}, "the": {}, "on": {},
	"your": {}, "account": {}, "a/c": {}, "ac": {}, "card": {},
	"upi": {}, "ref": {}, "txn": {}, "transaction": {}, "payment": {},
	"transfer": {}, "amount": {}, "rs": {}, "inr": {}, "bank": {},
}

// Merchant extracts and normalizes the payee. Bank-specific candidates are
// tried before the generic table; a VPA capture falls back to its local
// part. Returns "" when nothing valid is found.
func Merchant(message string, candidates ...[]pattern.Candidate) string {
	for _, list := range append(candidates, pattern.Merchant) {
		for _, c := range list {
			raw, ok := c.Find(message)
			if !ok {
				continue
			}
			if name := CleanMerchantName(raw); ValidMerchantName(name) {
				return name
			}
		}
	}
	// Last resort: the local part of any payment address in the message.
	if m := pattern.VPA.FindStringSubmatch(message); m != nil {
		if name := CleanMerchantName(m[1]); ValidMerchantName(name) {
			return name
		}
	}
	return ""
}

// CleanMerchantName runs the cleanup pipeline: strip trailing
// reference/date/UPI/time boilerplate, strip corporate suffixes, collapse
// whitespace, keep the first meaningful token, then map to a known brand
// or title-case.
func CleanMerchantName(raw string) string {
	s := strings.TrimSpace(raw)
	if i := strings.IndexByte(s, '@'); i > 0 {
		// Payment address: the local part names the payee.
		s = s[:i]
		s = strings.TrimSuffix(strings.ToLower(s), "qr")
	}

	cl := pattern.Cleaning
	s = cl.TrailingParens.ReplaceAllString(s, "")
	s = cl.RefSuffix.ReplaceAllString(s, "")
	s = cl.DateSuffix.ReplaceAllString(s, "")
	s = cl.UPISuffix.ReplaceAllString(s, "")
	s = cl.TimeSuffix.ReplaceAllString(s, "")
	s = cl.TrailingDash.ReplaceAllString(s, "")
	s = cl.PvtLtd.ReplaceAllString(s, "")
	s = cl.Ltd.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.TrimSpace(cl.Whitespace.ReplaceAllString(s, " "))
	s = strings.TrimRight(s, ".,;:")
	if s == "" {
		return ""
	}

	words := strings.Fields(s)
	token := words[0]
	for _, w := range words {
		if _, stop := stopWords[strings.ToLower(w)]; !stop {
			token = w
			break
		}
	}
	return brandOrTitle(token)
}

// ValidMerchantName rejects captures that are stop words, digit-heavy
// tokens, or payment addresses rather than names.
func ValidMerchantName(name string) bool {
	if len(name) < 2 || strings.Contains(name, "@") {
		return false
	}
	if _, stop := stopWords[strings.ToLower(name)]; stop {
		return false
	}
	letters, digits := 0, 0
	for _, r := range name {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			letters++
		case r >= '0' && r <= '9':
			digits++
		}
	}
	// Masked account fragments like "XX0093" clean up to digit-heavy
	// tokens; a real merchant name is mostly letters.
	return letters > 0 && digits <= letters
}

func brandOrTitle(token string) string {
	key := strings.ToLower(token)
	if brand, ok := pattern.BrandNames[key]; ok {
		return brand
	}
	for prefix, brand := range pattern.BrandNames {
		if strings.HasPrefix(key, prefix) {
			return brand
		}
	}
	if token == strings.ToUpper(token) && len(token) <= 5 {
		// Short all-caps tokens are usually initialisms; leave them be.
		return token
	}
	return strings.ToUpper(key[:1]) + key[1:]
}

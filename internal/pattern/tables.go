package pattern

import "regexp"

// Amount candidates. The "Rs." form is by far the most common in the wild,
// so it is listed first; INR and the rupee symbol follow.
var Amount = []Candidate{
	{Regex: regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{1,2})?)`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)INR\s*([0-9,]+(?:\.\d{1,2})?)`), Group: 1},
	{Regex: regexp.MustCompile(`₹\s*([0-9,]+(?:\.\d{1,2})?)`), Group: 1},
}

// Reference candidates.
var Reference = []Candidate{
	{Regex: regexp.MustCompile(`(?i)(?:Ref|Reference|Txn|Transaction)(?:\s+No)?[:.\s]+([A-Z0-9]+)`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)UPI[:\s]+([0-9]+)`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)Reference\s+Number[:\s]+([A-Z0-9]+)`), Group: 1},
}

// Account candidates capture the trailing digits of a masked account or
// card number. Extraction keeps only the last four digits.
var Account = []Candidate{
	{Regex: regexp.MustCompile(`(?i)(?:A/c|Account|Acct)(?:\s+No)?\.?\s+(?:XX+)?(\d{4,})`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)Card\s+(?:XX+|x)?(\d{4})`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)(?:A/c|Account)\D*?(\d{4})(?:\s|$)`), Group: 1},
}

// Balance candidates.
var Balance = []Candidate{
	{Regex: regexp.MustCompile(`(?i)(?:Avl\s+Bal|Available\s+Balance|Bal|Balance)[:\s]+(?:Rs\.?\s*|INR\s*)?([0-9,]+(?:\.\d{1,2})?)`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)(?:Updated|Remaining)\s+Balance[:\s]+(?:Rs\.?\s*|INR\s*)?([0-9,]+(?:\.\d{1,2})?)`), Group: 1},
}

// AvailableLimit candidates for credit-card messages. This is the remaining
// credit available to spend, not the total limit.
var AvailableLimit = []Candidate{
	{Regex: regexp.MustCompile(`(?i)Available\s+limit:?\s*Rs\.?\s*([0-9,]+(?:\.\d{1,2})?)`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)Avl\s+Lmt:?\s*Rs\.?\s*([0-9,]+(?:\.\d{1,2})?)`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)Avail\s+Limit:?\s*Rs\.?\s*([0-9,]+(?:\.\d{1,2})?)`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)Available\s+Credit\s+Limit:?\s*Rs\.?\s*([0-9,]+(?:\.\d{1,2})?)`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)(?:^|\s)Limit:?\s*Rs\.?\s*([0-9,]+(?:\.\d{1,2})?)`), Group: 1},
}

// Merchant candidates. Prepositional phrases are cut at the first trailing
// qualifier ("on", "at", "Ref", "UPI") so the capture is the payee alone.
var Merchant = []Candidate{
	{Regex: regexp.MustCompile(`(?i)to\s+VPA\s+([^\s]+@[^\s]+)`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)to\s+([^.\n]+?)(?:\s+on|\s+at|\s+Ref|\s+UPI)`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)from\s+([^.\n]+?)(?:\s+on|\s+at|\s+Ref|\s+UPI)`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)at\s+([^.\n]+?)(?:\s+on|\s+Ref)`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)for\s+([^.\n]+?)(?:\s+on|\s+at|\s+Ref)`), Group: 1},
}

// Cleaning patterns strip the boilerplate that merchant captures drag along.
var Cleaning = struct {
	TrailingParens *regexp.Regexp
	RefSuffix      *regexp.Regexp
	DateSuffix     *regexp.Regexp
	UPISuffix      *regexp.Regexp
	TimeSuffix     *regexp.Regexp
	TrailingDash   *regexp.Regexp
	PvtLtd         *regexp.Regexp
	Ltd            *regexp.Regexp
	Whitespace     *regexp.Regexp
}{
	TrailingParens: regexp.MustCompile(`\s*\(.*?\)\s*$`),
	RefSuffix:      regexp.MustCompile(`(?i)\s+Ref\s+No.*`),
	DateSuffix:     regexp.MustCompile(`\s+on\s+\d{2}.*`),
	UPISuffix:      regexp.MustCompile(`(?i)\s+UPI.*`),
	TimeSuffix:     regexp.MustCompile(`\s+at\s+\d{2}:\d{2}.*`),
	TrailingDash:   regexp.MustCompile(`\s*-\s*$`),
	PvtLtd:         regexp.MustCompile(`(?i)(\s+PVT\.?\s*LTD\.?|\s+PRIVATE\s+LIMITED)$`),
	Ltd:            regexp.MustCompile(`(?i)(\s+LTD\.?|\s+LIMITED)$`),
	Whitespace:     regexp.MustCompile(`\s+`),
}

// CurrencyCode matches an ISO currency code immediately preceding an amount.
// Candidates are validated against KnownCurrencies so that unrelated
// three-letter tokens ("UPI 1078...") are not mistaken for a currency.
var CurrencyCode = regexp.MustCompile(`([A-Z]{3})\s*[0-9,]+(?:\.\d{1,2})?`)

// KnownCurrencies is the accepted set for CurrencyCode captures.
var KnownCurrencies = map[string]struct{}{
	"INR": {}, "USD": {}, "EUR": {}, "GBP": {}, "AED": {},
	"SGD": {}, "AUD": {}, "CAD": {}, "JPY": {}, "CHF": {},
	"THB": {}, "MYR": {}, "HKD": {}, "NZD": {}, "SAR": {},
}

// VPA matches a payment-address identifier; the local part doubles as a
// fallback merchant identity.
var VPA = regexp.MustCompile(`([A-Za-z0-9.\-_]{2,})@[A-Za-z]{2,}`)

// DebitKeywords and CreditKeywords drive direction inference: occurrences
// of each set are counted case-insensitively and credit wins only on a
// strict majority. A tie falls back to debit.
var (
	DebitKeywords = []string{
		"debited", "debit", "paid", "payment", "withdrawn", "spent",
		"charged", "deducted", "purchase", "bought", "withdrawal",
	}
	CreditKeywords = []string{
		"credited", "credit", "received", "deposited", "added",
		"refund", "cashback", "reversed", "deposit",
	}
)

// TransactionKeywords gate whether a message describes a completed
// transaction at all.
var TransactionKeywords = []string{
	"debited", "credited", "withdrawn", "deposited",
	"spent", "received", "transferred", "paid", "deducted",
}

// SkipPhrases mark messages that must never become transactions: one-time
// codes, promotions, collect requests, and dues reminders.
var SkipPhrases = []string{
	"otp", "one time password", "verification code",
	"offer", "discount", "cashback offer", "win ",
	"has requested", "payment request", "collect request",
	"requesting payment", "requests rs", "ignore if already paid",
	"have received payment",
	"is due", "min amount due", "minimum amount due",
	"in arrears", "is overdue", "ignore if paid",
}

// InvestmentKeywords identify transfers into brokers, clearing houses, and
// funds. Checked before debit/credit resolution.
var InvestmentKeywords = []string{
	"iccl", "indian clearing corporation", "nsccl", "nse clearing",
	"clearing corporation",
	"nach", "ecs",
	"groww", "zerodha", "upstox", "kite", "kuvera", "paytm money",
	"etmoney", "smallcase", "angel one", "angel broking", "5paisa",
	"icici securities", "icici direct", "hdfc securities",
	"kotak securities", "motilal oswal", "sharekhan", "edelweiss",
	"axis direct", "sbi securities",
	"mutual fund", "sip", "elss", "ipo", "folio", "demat", "stockbroker",
	"nse", "bse", "cdsl", "nsdl",
}

// AccountPhrases and CardPhrases disambiguate card spends from account
// debits; account phrases are checked first and win.
var (
	AccountPhrases = []string{
		"a/c", "account", "ac ", "acc ",
		"saving account", "current account", "savings a/c", "current a/c",
	}
	CardPhrases = []string{
		"card ending", "card xx", "debit card", "credit card",
		"card no.", "card number", "card *", "card x",
	}
)

// BrandNames corrects well-known processor and merchant codes to their
// public brand before title-casing kicks in as the fallback.
var BrandNames = map[string]string{
	"zomato":     "Zomato",
	"swiggy":     "Swiggy",
	"amazon":     "Amazon",
	"amzn":       "Amazon",
	"flipkart":   "Flipkart",
	"uber":       "Uber",
	"ola":        "Ola",
	"olacabs":    "Ola",
	"netflix":    "Netflix",
	"spotify":    "Spotify",
	"hotstar":    "Hotstar",
	"paytm":      "Paytm",
	"paytmqr":    "Paytm",
	"phonepe":    "PhonePe",
	"gpay":       "Google Pay",
	"googlepay":  "Google Pay",
	"bigbasket":  "BigBasket",
	"makemytrip": "MakeMyTrip",
	"bookmyshow": "BookMyShow",
	"irctc":      "IRCTC",
	"jio":        "Jio",
	"airtel":     "Airtel",
	"razorpay":   "Razorpay",
	"billdesk":   "BillDesk",
}

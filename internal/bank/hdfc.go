package bank

import (
	"regexp"
	"strings"
	"time"

	"github.com/pennywiseai/smsledger/internal/extract"
	"github.com/pennywiseai/smsledger/internal/model"
	"github.com/pennywiseai/smsledger/internal/pattern"
)

// HDFC handles HDFC Bank messages: UPI debits with VPA details, salary
// credits carrying the employer name, card spends with BLOCK CC/DC
// instructions, E-Mandate registration notices, and future-debit alerts.
type HDFC struct {
	strategy
}

var hdfcSenders = map[string]struct{}{
	"HDFCBK": {}, "HDFCBANK": {}, "HDFC": {}, "HDFCB": {},
}

var hdfcDLT = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z]{2}-HDFCBK.*$`),
	regexp.MustCompile(`^[A-Z]{2}-HDFC.*$`),
	regexp.MustCompile(`^HDFC-[A-Z]+$`),
	regexp.MustCompile(`^[A-Z]{2}-HDFCB.*$`),
}

var hdfcMerchants = []pattern.Candidate{
	// "for XXXXX-ABC-XYZ JUL SALARY-ACME CORP"
	{Regex: regexp.MustCompile(`(?i)SALARY[- ]([^.\n]+?)(?:\s+Info|$)`), Group: 1},
	// "Info: UPI/merchant/category"
	{Regex: regexp.MustCompile(`(?i)Info:\s*(?:UPI/)?([^/.\n]+?)(?:/|$)`), Group: 1},
	// "VPA merchant@bank (Merchant Name)"
	{Regex: regexp.MustCompile(`(?i)VPA\s+[^@\s]+@[^\s]+\s*\(([^)]+)\)`), Group: 1},
	// "VPA merchant@bank" - local part
	{Regex: regexp.MustCompile(`(?i)VPA\s+([^@\s]{3,})@`), Group: 1},
	// "spent on Card XX1234 at merchant on 09-07"
	{Regex: regexp.MustCompile(`(?i)at\s+([^.\n]+?)\s+on\s+\d{2}`), Group: 1},
	// "debited for merchant on 09-07"
	{Regex: regexp.MustCompile(`(?i)debited\s+for\s+([^.\n]+?)\s+on\s+\d{2}`), Group: 1},
	// "towards Merchant UMRN ..." payment alerts
	{Regex: regexp.MustCompile(`(?i)towards\s+([^\n]+?)(?:\s+UMRN|\s+ID:|\s+Alert:|$)`), Group: 1},
}

var hdfcReferences = []pattern.Candidate{
	{Regex: regexp.MustCompile(`(?i)UPI\s+Ref\s+No\s+(\d{12})`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)Ref\s+No\.?\s+([A-Z0-9]+)`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)Ref\s+(\d{9,12})`), Group: 1},
}

var hdfcAccounts = []pattern.Candidate{
	{Regex: regexp.MustCompile(`(?i)deposited\s+in\s+(?:HDFC\s+Bank\s+)?A/c\s+(?:XX+)?(\d+)`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)from\s+(?:HDFC\s+Bank\s+)?A/c\s+(?:XX+)?(\d+)`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)Card\s+x(\d{4})`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)BLOCK\s+DC\s+(\d{4})`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)A/c\s+(?:XX+)?(\d+)`), Group: 1},
}

var hdfcBalances = []pattern.Candidate{
	{Regex: regexp.MustCompile(`(?i)Avl\s+bal:?\s*INR\s*([0-9,]+(?:\.\d{1,2})?)`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)Available\s+Balance:?\s*INR\s*([0-9,]+(?:\.\d{1,2})?)`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)Bal\s+Rs\.?\s*([0-9,]+(?:\.\d{1,2})?)`), Group: 1},
}

// E-Mandate notice components (multi-line format).
var (
	hdfcMandateAmountRe   = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{1,2})?)\s+will\s+be\s+deducted`)
	hdfcMandateDateRe     = regexp.MustCompile(`(?i)deducted\s+on\s+(\d{2}/\d{2}/\d{2}),?\s*\d{2}:\d{2}:\d{2}`)
	hdfcMandateMerchantRe = regexp.MustCompile(`(?i)For\s+([^\n]+?)\s+mandate`)
	hdfcUMNRe             = regexp.MustCompile(`(?i)UMN\s+([a-zA-Z0-9@]+)`)

	hdfcFutureAmountRe = regexp.MustCompile(`(?i)INR\.?\s*([0-9,]+(?:\.\d{1,2})?)`)
	hdfcFutureDateRe   = regexp.MustCompile(`(?i)will\s+be\s+debited\s+on\s+(\d{2}/\d{2}/\d{4})`)
	hdfcFutureNameRe   = regexp.MustCompile(`(?i)for\s+([^\n]+?)(?:\s+ID:|\s+Act:|$)`)
)

// NewHDFC constructs the HDFC Bank parser.
func NewHDFC() HDFC {
	return HDFC{strategy{
		bankName:   "HDFC Bank",
		merchants:  hdfcMerchants,
		references: hdfcReferences,
		accounts:   hdfcAccounts,
		balances:   hdfcBalances,
		classify:   hdfcClassify,
		gate:       hdfcGate,
	}}
}

// CanHandle matches the common HDFC sender codes and their DLT variants.
func (HDFC) CanHandle(sender string) bool {
	upper := strings.ToUpper(sender)
	if _, ok := hdfcSenders[upper]; ok {
		return true
	}
	for _, re := range hdfcDLT {
		if re.MatchString(upper) {
			return true
		}
	}
	return false
}

// Parse extracts a completed HDFC transaction, or nil for mandate notices,
// future-debit alerts, and anything else that is not a transaction.
func (h HDFC) Parse(body, sender string, timestamp time.Time) *model.ParsedTransaction {
	return h.parse(body, sender, timestamp)
}

// ParseMandate recognizes E-Mandate registrations and future-debit alerts.
// Both pre-announce a recurring deduction; neither is a transaction.
func (h HDFC) ParseMandate(body string) *model.MandateInfo {
	if isHDFCEMandate(body) {
		return h.parseEMandate(body)
	}
	if isHDFCFutureDebit(body) {
		return h.parseFutureDebit(body)
	}
	return nil
}

func (h HDFC) parseEMandate(body string) *model.MandateInfo {
	amount, ok := findAmount(hdfcMandateAmountRe, body)
	if !ok {
		return nil
	}
	merchant := "Unknown Subscription"
	if m := hdfcMandateMerchantRe.FindStringSubmatch(body); m != nil {
		merchant = extract.CleanMerchantName(m[1])
	}
	return &model.MandateInfo{
		Amount:            amount,
		Merchant:          merchant,
		NextDeductionDate: firstGroup(hdfcMandateDateRe, body),
		UMN:               firstGroup(hdfcUMNRe, body),
		DateFormat:        model.DefaultMandateDateFormat,
	}
}

func (h HDFC) parseFutureDebit(body string) *model.MandateInfo {
	amount, ok := findAmount(hdfcFutureAmountRe, body)
	if !ok {
		return nil
	}
	merchant := "Unknown Subscription"
	if m := hdfcFutureNameRe.FindStringSubmatch(body); m != nil {
		if name := extract.CleanMerchantName(m[1]); name != "" {
			merchant = name
		}
	}
	// dd/MM/yyyy in the notice; normalize to the dd/MM/yy mandate form.
	date := firstGroup(hdfcFutureDateRe, body)
	if len(date) == 10 {
		date = date[:6] + date[8:]
	}
	return &model.MandateInfo{
		Amount:            amount,
		Merchant:          merchant,
		NextDeductionDate: date,
		DateFormat:        model.DefaultMandateDateFormat,
	}
}

func hdfcClassify(body string) (model.TransactionType, bool) {
	lower := strings.ToLower(body)
	switch {
	case strings.Contains(lower, "block cc"), strings.Contains(lower, "block pcc"):
		return model.TypeCredit, true
	case strings.Contains(lower, "spent on card") && !strings.Contains(lower, "block dc"):
		return model.TypeCredit, true
	case strings.Contains(lower, "credit card") && containsAny(lower, "payment", "towards"):
		// Paying a card bill is an ordinary account expense.
		return model.TypeExpense, true
	case strings.Contains(lower, "sent") && strings.Contains(lower, "from hdfc"):
		return model.TypeExpense, true
	case strings.Contains(lower, "spent") && strings.Contains(lower, "from hdfc bank card"):
		return model.TypeExpense, true
	}
	return "", false
}

func hdfcGate(body string) bool {
	if isHDFCEMandate(body) || isHDFCFutureDebit(body) {
		return false
	}
	lower := strings.ToLower(body)
	if strings.Contains(lower, "received towards your credit card") {
		return false
	}
	if strings.Contains(lower, "payment") && strings.Contains(lower, "credited to your card") {
		return false
	}
	if !extract.IsTransactionMessage(body) {
		// HDFC has a few phrasings the generic gate misses.
		return containsAny(lower, "sent ", "txn ") &&
			!containsAny(lower, "otp", "will be", "has requested")
	}
	return true
}

func isHDFCEMandate(body string) bool {
	return strings.Contains(strings.ToLower(body), "e-mandate!")
}

func isHDFCFutureDebit(body string) bool {
	return strings.Contains(strings.ToLower(body), "will be")
}

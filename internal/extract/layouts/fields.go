package layouts

import (
	"regexp"
	"strings"
)

// Attr names a structured field an account block can carry
type Attr string

const (
	AttrAccountNumber    Attr = "account_number"
	AttrDateOpened       Attr = "date_opened"
	AttrLastActivity     Attr = "date_of_last_activity"
	AttrLastPayment      Attr = "last_payment"
	AttrBalance          Attr = "balance"
	AttrCreditLimit      Attr = "credit_limit"
	AttrStatus           Attr = "status"
	AttrOriginalCreditor Attr = "original_creditor"
	AttrFirstDelinquency Attr = "date_of_first_delinquency"
)

// Descriptor maps the label variants report vendors use onto one attribute.
// New vendor labels are added here as data, not as new code paths.
type Descriptor struct {
	Attr   Attr
	Labels []string // Matched case-insensitively, tolerant of surrounding whitespace
}

// Descriptors is the ordered catalog of recognized field labels. Order
// matters: longer labels for the same attribute come first so "date of last
// activity" wins over a bare "date" prefix elsewhere.
var Descriptors = []Descriptor{
	{Attr: AttrAccountNumber, Labels: []string{"account #", "account#", "account number"}},
	{Attr: AttrDateOpened, Labels: []string{"date opened", "open date", "opened"}},
	{Attr: AttrLastActivity, Labels: []string{"date of last activity", "last activity"}},
	{Attr: AttrFirstDelinquency, Labels: []string{"date of first delinquency", "first delinquency", "dofd"}},
	{Attr: AttrLastPayment, Labels: []string{"last payment"}},
	{Attr: AttrBalance, Labels: []string{"balance owed", "balance"}},
	{Attr: AttrCreditLimit, Labels: []string{"credit limit", "high credit"}},
	{Attr: AttrStatus, Labels: []string{"account status", "status"}},
	{Attr: AttrOriginalCreditor, Labels: []string{"original creditor"}},
}

var spaceRun = regexp.MustCompile(`\s+`)

// MatchLabel checks whether a line starts with a recognized field label and
// returns the attribute plus the remainder of the line after the label.
func MatchLabel(line string) (Attr, string, bool) {
	trimmed := strings.TrimSpace(line)
	folded := spaceRun.ReplaceAllString(strings.ToLower(trimmed), " ")

	for _, desc := range Descriptors {
		for _, label := range desc.Labels {
			if !strings.HasPrefix(folded, label) {
				continue
			}
			rest := folded[len(label):]
			// The label must end at a boundary, not mid-word
			// (e.g. "balanced budget" is not a "balance" line)
			if rest != "" && rest[0] != ' ' && rest[0] != ':' && rest[0] != '\t' {
				continue
			}
			// Recover the remainder from the original line so value
			// casing is preserved
			value := recoverRemainder(trimmed, len(label))
			value = strings.TrimLeft(value, ": \t")
			return desc.Attr, value, true
		}
	}
	return "", "", false
}

// recoverRemainder maps a folded-label length back onto the original string,
// walking past the same number of non-space label characters.
func recoverRemainder(original string, foldedLen int) string {
	folded := 0
	lastWasSpace := false
	for i, r := range original {
		if folded >= foldedLen {
			return original[i:]
		}
		if r == ' ' || r == '\t' {
			if !lastWasSpace {
				folded++
			}
			lastWasSpace = true
		} else {
			folded++
			lastWasSpace = false
		}
	}
	return ""
}

// IsFieldLabel reports whether the line begins with any recognized label
func IsFieldLabel(line string) bool {
	_, _, ok := MatchLabel(line)
	return ok
}

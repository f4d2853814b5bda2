package types

import (
	"fmt"
	"strings"
)

// Amount is a value in a currency, optionally issued by a counterparty. XRP has no counterparty.
type Amount struct {
	Value        string `json:"value"`
	Currency     string `json:"currency"`
	Counterparty string `json:"counterparty,omitempty"`
}

var amountSchema = newSchema("Amount",
	str("value", FloatStringPattern, true, func(a *Amount) string { return a.Value }),
	str("currency", CurrencyPattern, true, func(a *Amount) string { return a.Currency }),
	str("counterparty", OptionalAddressPattern, false, func(a *Amount) string { return a.Counterparty }),
)

func (a *Amount) Validate() error {
	return amountSchema.Validate(a)
}

// CurrencyString returns "XRP" or "USD+rIssuer".
func (a Amount) CurrencyString() string {
	return a.Issue().String()
}

// String returns the ripple-rest amount form, "1+XRP" or "1+USD+rIssuer".
func (a Amount) String() string {
	return a.Value + "+" + a.CurrencyString()
}

// Issue returns the currency and counterparty of a.
func (a Amount) Issue() Issue {
	return Issue{Currency: a.Currency, Counterparty: a.Counterparty}
}

// ParseAmount parses the form produced by Amount.String.
func ParseAmount(s string) (Amount, error) {
	parts := strings.Split(s, "+")
	switch {
	case len(parts) == 2 && parts[0] != "" && parts[1] != "":
		return Amount{Value: parts[0], Currency: parts[1]}, nil
	case len(parts) == 3 && parts[0] != "" && parts[1] != "" && parts[2] != "":
		return Amount{Value: parts[0], Currency: parts[1], Counterparty: parts[2]}, nil
	default:
		return Amount{}, fmt.Errorf("invalid amount %q, expected value+currency[+counterparty]", s)
	}
}

// Issue identifies a currency, and for non-XRP currencies its issuer. It is the canonical form
// used to constrain source currencies when finding payment paths.
type Issue struct {
	Currency     string `json:"currency"`
	Counterparty string `json:"counterparty,omitempty"`
}

var issueSchema = newSchema("Issue",
	str("currency", CurrencyPattern, true, func(i *Issue) string { return i.Currency }),
	str("counterparty", OptionalAddressPattern, false, func(i *Issue) string { return i.Counterparty }),
)

// Validate checks the fields of i. Unlike entity validation, a missing currency is an error, since
// an issue is sent as a bare query segment.
func (i *Issue) Validate() error {
	if i.Currency == "" {
		return &ValidationError{Type: "Issue", Field: "currency", Pattern: CurrencyPattern.String()}
	}
	return issueSchema.Validate(i)
}

// String returns the ripple-rest currency form, "XRP" or "USD+rIssuer".
func (i Issue) String() string {
	if i.Counterparty == "" {
		return i.Currency
	}
	return i.Currency + "+" + i.Counterparty
}

// ParseIssue parses "XRP" or "USD+rIssuer".
func ParseIssue(s string) (Issue, error) {
	currency, counterparty, found := strings.Cut(s, "+")
	if currency == "" || (found && (counterparty == "" || strings.Contains(counterparty, "+"))) {
		return Issue{}, fmt.Errorf("invalid currency %q, expected currency[+counterparty]", s)
	}
	return Issue{Currency: currency, Counterparty: counterparty}, nil
}

package types

// Balance is a snapshot of one currency held by an account.
type Balance struct {
	Value        string `json:"value"`
	Currency     string `json:"currency"`
	Counterparty string `json:"counterparty,omitempty"`
}

var balanceSchema = newSchema("Balance",
	str("value", nil, true, func(b *Balance) string { return b.Value }),
	str("currency", CurrencyPattern, true, func(b *Balance) string { return b.Currency }),
	str("counterparty", OptionalAddressPattern, false, func(b *Balance) string { return b.Counterparty }),
)

func (b *Balance) Validate() error {
	return balanceSchema.Validate(b)
}

// Issue returns the currency and counterparty of b.
func (b Balance) Issue() Issue {
	return Issue{Currency: b.Currency, Counterparty: b.Counterparty}
}

// Amount returns b as an Amount.
func (b Balance) Amount() Amount {
	return Amount{Value: b.Value, Currency: b.Currency, Counterparty: b.Counterparty}
}

package types

// Trustline is a credit line from Account to Counterparty in Currency. Previous is the state
// before the last change; the server fills in one level only.
type Trustline struct {
	Account                    string     `json:"account"`
	Counterparty               string     `json:"counterparty,omitempty"`
	Currency                   string     `json:"currency,omitempty"`
	Limit                      string     `json:"limit"`
	ReciprocatedLimit          string     `json:"reciprocated_limit,omitempty"`
	AuthorizedByAccount        bool       `json:"authorized_by_account"`
	AuthorizedByCounterparty   bool       `json:"authorized_by_counterparty"`
	AccountAllowsRippling      bool       `json:"account_allows_rippling"`
	CounterpartyAllowsRippling bool       `json:"counterparty_allows_rippling"`
	Ledger                     string     `json:"ledger,omitempty"`
	Hash                       string     `json:"hash,omitempty"`
	Previous                   *Trustline `json:"previous,omitempty"`
}

var trustlineSchema = newSchema("Trustline",
	str("account", AddressPattern, true, func(t *Trustline) string { return t.Account }),
	str("counterparty", AddressPattern, false, func(t *Trustline) string { return t.Counterparty }),
	str("currency", CurrencyPattern, false, func(t *Trustline) string { return t.Currency }),
	str("limit", FloatStringPattern, true, func(t *Trustline) string { return t.Limit }),
	str("reciprocated_limit", FloatStringPattern, false, func(t *Trustline) string { return t.ReciprocatedLimit }),
	typed[Trustline]("authorized_by_account", KindBool, false),
	typed[Trustline]("authorized_by_counterparty", KindBool, false),
	typed[Trustline]("account_allows_rippling", KindBool, false),
	typed[Trustline]("counterparty_allows_rippling", KindBool, false),
	str("ledger", UIntStringPattern, false, func(t *Trustline) string { return t.Ledger }),
	str("hash", Hash256Pattern, false, func(t *Trustline) string { return t.Hash }),
	typed[Trustline]("previous", KindEntity, false),
)

func (t *Trustline) Validate() error {
	return trustlineSchema.Validate(t)
}

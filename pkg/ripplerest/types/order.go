package types

// Order is an offer on the ledger. Like Trustline it links to its previous state.
type Order struct {
	Account             string    `json:"account"`
	Buy                 bool      `json:"buy"`
	BaseAmount          Amount    `json:"base_amount,omitzero"`
	CounterAmount       Amount    `json:"counter_amount,omitzero"`
	ExchangeRate        string    `json:"exchange_rate,omitempty"`
	ExpirationTimestamp Timestamp `json:"expiration_timestamp,omitzero"`
	LedgerTimeout       string    `json:"ledger_timeout,omitempty"`
	ImmediateOrCancel   bool      `json:"immediate_or_cancel"`
	FillOrKill          bool      `json:"fill_or_kill"`
	MaximizeBuyOrSell   bool      `json:"maximize_buy_or_sell"`
	CancelReplace       string    `json:"cancel_replace,omitempty"`
	Sequence            string    `json:"sequence,omitempty"`
	Fee                 string    `json:"fee,omitempty"`
	State               string    `json:"state,omitempty"`
	Ledger              string    `json:"ledger,omitempty"`
	Hash                string    `json:"hash,omitempty"`
	Previous            *Order    `json:"previous,omitempty"`
}

var orderSchema = newSchema("Order",
	str("account", AddressPattern, true, func(o *Order) string { return o.Account }),
	typed[Order]("buy", KindBool, false),
	typed[Order]("base_amount", KindEntity, false),
	typed[Order]("counter_amount", KindEntity, false),
	str("exchange_rate", FloatStringPattern, false, func(o *Order) string { return o.ExchangeRate }),
	typed[Order]("expiration_timestamp", KindTimestamp, false),
	str("ledger_timeout", OptionalUIntPattern, false, func(o *Order) string { return o.LedgerTimeout }),
	typed[Order]("immediate_or_cancel", KindBool, false),
	typed[Order]("fill_or_kill", KindBool, false),
	typed[Order]("maximize_buy_or_sell", KindBool, false),
	str("cancel_replace", CancelReplacePattern, false, func(o *Order) string { return o.CancelReplace }),
	str("sequence", OptionalUIntPattern, false, func(o *Order) string { return o.Sequence }),
	str("fee", FloatStringPattern, false, func(o *Order) string { return o.Fee }),
	str("state", OrderStatePattern, false, func(o *Order) string { return o.State }),
	str("ledger", UIntStringPattern, false, func(o *Order) string { return o.Ledger }),
	str("hash", Hash256Pattern, false, func(o *Order) string { return o.Hash }),
	typed[Order]("previous", KindEntity, false),
)

func (o *Order) Validate() error {
	return orderSchema.Validate(o)
}

package types

// Payment is the flattened payment object used by ripple-rest.
//
// ClientResourceID is the idempotency key that ties a submitted payment to its outcome in the
// ledger. It travels next to the payment in request and response envelopes, never inside it.
type Payment struct {
	SourceAccount             string    `json:"source_account"`
	SourceTag                 UInt32    `json:"source_tag,omitempty"`
	SourceAmount              Amount    `json:"source_amount,omitzero"`
	SourceSlippage            string    `json:"source_slippage,omitempty"`
	DestinationAccount        string    `json:"destination_account"`
	DestinationTag            UInt32    `json:"destination_tag,omitempty"`
	DestinationAmount         Amount    `json:"destination_amount"`
	InvoiceID                 string    `json:"invoice_id,omitempty"`
	Paths                     string    `json:"paths,omitempty"`
	PartialPayment            bool      `json:"partial_payment"`
	NoDirectRipple            bool      `json:"no_direct_ripple"`
	Direction                 string    `json:"direction,omitempty"`
	State                     string    `json:"state,omitempty"`
	Result                    string    `json:"result,omitempty"`
	Ledger                    string    `json:"ledger,omitempty"`
	Hash                      string    `json:"hash,omitempty"`
	Timestamp                 Timestamp `json:"timestamp,omitzero"`
	Fee                       string    `json:"fee,omitempty"`
	SourceBalanceChanges      []Amount  `json:"source_balance_changes,omitempty"`
	DestinationBalanceChanges []Amount  `json:"destination_balance_changes,omitempty"`

	ClientResourceID string `json:"-"`
}

var paymentSchema = newSchema("Payment",
	str("source_account", AddressPattern, true, func(p *Payment) string { return p.SourceAccount }),
	typed[Payment]("source_tag", KindUInt32, false),
	typed[Payment]("source_amount", KindEntity, false),
	str("source_slippage", FloatStringPattern, false, func(p *Payment) string { return p.SourceSlippage }),
	str("destination_account", AddressPattern, true, func(p *Payment) string { return p.DestinationAccount }),
	typed[Payment]("destination_tag", KindUInt32, false),
	typed[Payment]("destination_amount", KindEntity, true),
	str("invoice_id", Hash256Pattern, false, func(p *Payment) string { return p.InvoiceID }),
	str("paths", nil, false, func(p *Payment) string { return p.Paths }),
	typed[Payment]("partial_payment", KindBool, false),
	typed[Payment]("no_direct_ripple", KindBool, false),
	str("direction", DirectionPattern, false, func(p *Payment) string { return p.Direction }),
	str("state", PaymentStatePattern, false, func(p *Payment) string { return p.State }),
	str("result", ResultCodePattern, false, func(p *Payment) string { return p.Result }),
	str("ledger", UIntStringPattern, false, func(p *Payment) string { return p.Ledger }),
	str("hash", Hash256Pattern, false, func(p *Payment) string { return p.Hash }),
	typed[Payment]("timestamp", KindTimestamp, false),
	str("fee", FloatStringPattern, false, func(p *Payment) string { return p.Fee }),
	typed[Payment]("source_balance_changes", KindEntityList, false),
	typed[Payment]("destination_balance_changes", KindEntityList, false),
)

func (p *Payment) Validate() error {
	return paymentSchema.Validate(p)
}

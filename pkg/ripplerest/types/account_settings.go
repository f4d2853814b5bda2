package types

// AccountSettings mirrors the account root flags and fields stored in the ledger. Account is not
// sent by the server; the client fills it in after a fetch or an update.
type AccountSettings struct {
	Account               string  `json:"account,omitempty"`
	RegularKey            string  `json:"regular_key,omitempty"`
	URL                   string  `json:"url,omitempty"`
	EmailHash             string  `json:"email_hash,omitempty"`
	MessageKey            string  `json:"message_key,omitempty"`
	TransferRate          float64 `json:"transfer_rate,omitempty"`
	RequireDestinationTag bool    `json:"require_destination_tag"`
	RequireAuthorization  bool    `json:"require_authorization"`
	DisallowXRP           bool    `json:"disallow_xrp"`
	TransactionSequence   UInt32  `json:"transaction_sequence,omitempty"`
	TrustlineCount        UInt32  `json:"trustline_count,omitempty"`
	Ledger                string  `json:"ledger,omitempty"`
	Hash                  string  `json:"hash,omitempty"`
}

var accountSettingsSchema = newSchema("AccountSettings",
	str("account", AddressPattern, true, func(s *AccountSettings) string { return s.Account }),
	str("regular_key", AddressPattern, false, func(s *AccountSettings) string { return s.RegularKey }),
	str("url", nil, false, func(s *AccountSettings) string { return s.URL }),
	str("email_hash", Hash128Pattern, false, func(s *AccountSettings) string { return s.EmailHash }),
	str("message_key", MessageKeyPattern, false, func(s *AccountSettings) string { return s.MessageKey }),
	typed[AccountSettings]("transfer_rate", KindFloat, false),
	typed[AccountSettings]("require_destination_tag", KindBool, false),
	typed[AccountSettings]("require_authorization", KindBool, false),
	typed[AccountSettings]("disallow_xrp", KindBool, false),
	typed[AccountSettings]("transaction_sequence", KindUInt32, false),
	typed[AccountSettings]("trustline_count", KindUInt32, false),
	str("ledger", UIntStringPattern, false, func(s *AccountSettings) string { return s.Ledger }),
	str("hash", Hash256Pattern, false, func(s *AccountSettings) string { return s.Hash }),
)

func (s *AccountSettings) Validate() error {
	return accountSettingsSchema.Validate(s)
}

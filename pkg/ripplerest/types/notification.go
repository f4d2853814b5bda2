package types

// Notification describes one transaction affecting an account. Notifications form a list over
// time through their previous and next URLs.
type Notification struct {
	Account                 string    `json:"account,omitempty"`
	Type                    string    `json:"type,omitempty"`
	Direction               string    `json:"direction,omitempty"`
	State                   string    `json:"state,omitempty"`
	Result                  string    `json:"result,omitempty"`
	Ledger                  string    `json:"ledger,omitempty"`
	Hash                    string    `json:"hash,omitempty"`
	Timestamp               Timestamp `json:"timestamp,omitzero"`
	TransactionURL          string    `json:"transaction_url,omitempty"`
	PreviousNotificationURL string    `json:"previous_notification_url,omitempty"`
	NextNotificationURL     string    `json:"next_notification_url,omitempty"`
}

var notificationSchema = newSchema("Notification",
	str("account", AddressPattern, false, func(n *Notification) string { return n.Account }),
	str("type", NotificationTypePattern, false, func(n *Notification) string { return n.Type }),
	str("direction", DirectionPattern, false, func(n *Notification) string { return n.Direction }),
	str("state", NotificationStatePattern, false, func(n *Notification) string { return n.State }),
	str("result", ResultCodePattern, false, func(n *Notification) string { return n.Result }),
	str("ledger", UIntStringPattern, false, func(n *Notification) string { return n.Ledger }),
	str("hash", Hash256Pattern, false, func(n *Notification) string { return n.Hash }),
	typed[Notification]("timestamp", KindTimestamp, false),
	str("transaction_url", nil, false, func(n *Notification) string { return n.TransactionURL }),
	str("previous_notification_url", nil, false, func(n *Notification) string { return n.PreviousNotificationURL }),
	str("next_notification_url", nil, false, func(n *Notification) string { return n.NextNotificationURL }),
)

func (n *Notification) Validate() error {
	return notificationSchema.Validate(n)
}

// NextAvailable reports whether a newer notification is known. False means "not yet": fetching
// the same notification again later may return it with the next URL set.
func (n *Notification) NextAvailable() bool {
	return n.NextNotificationURL != ""
}

package ripplerest

import "github.com/ripplerest/ripplerest-go/pkg/ripplerest/types"

type connectedResponse struct {
	types.Envelope
	Connected bool `json:"connected"`
}

type serverInfoResponse struct {
	types.Envelope
	types.ServerInfo
}

type uuidResponse struct {
	types.Envelope
	UUID string `json:"uuid"`
}

type transactionResponse struct {
	types.Envelope
	Transaction types.Transaction `json:"transaction"`
}

type balancesResponse struct {
	types.Envelope
	Balances []types.Balance `json:"balances"`
}

type trustlinesResponse struct {
	types.Envelope
	Trustlines []types.Trustline `json:"trustlines"`
}

type addTrustlineRequest struct {
	types.RequestEnvelope
	Trustline     types.Trustline `json:"trustline"`
	AllowRippling bool            `json:"allow_rippling"`
}

type trustlineResponse struct {
	types.Envelope
	Trustline types.Trustline `json:"trustline"`
	Hash      string          `json:"hash"`
	Ledger    string          `json:"ledger"`
}

type setSettingsRequest struct {
	types.RequestEnvelope
	Settings types.AccountSettings `json:"settings"`
}

type settingsResponse struct {
	types.Envelope
	Settings types.AccountSettings `json:"settings"`
	Hash     string                `json:"hash"`
	Ledger   string                `json:"ledger"`
}

type notificationResponse struct {
	types.Envelope
	Notification types.Notification `json:"notification"`
}

type paymentResponse struct {
	types.Envelope
	Payment types.Payment `json:"payment"`
}

type pathsResponse struct {
	types.Envelope
	Payments []types.Payment `json:"payments"`
}

type paymentEntry struct {
	ClientResourceID string        `json:"client_resource_id"`
	Payment          types.Payment `json:"payment"`
}

type paymentsResponse struct {
	types.Envelope
	Payments []paymentEntry `json:"payments"`
}

type submitPaymentRequest struct {
	types.RequestEnvelope
	Payment types.Payment `json:"payment"`
}

type submitPaymentResponse struct {
	types.Envelope
	ClientResourceID string `json:"client_resource_id"`
	StatusURL        string `json:"status_url,omitempty"`
}

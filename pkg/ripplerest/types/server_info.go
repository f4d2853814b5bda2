package types

// ServerInfo is the status of the ripple-rest server and the rippled node behind it.
type ServerInfo struct {
	RippledServerURL    string        `json:"rippled_server_url"`
	RippledServerStatus RippledStatus `json:"rippled_server_status"`
	APIDocumentationURL string        `json:"api_documentation_url"`
}

type RippledStatus struct {
	BuildVersion     string          `json:"build_version"`
	CompleteLedgers  string          `json:"complete_ledgers"`
	HostID           string          `json:"hostid"`
	LastClose        LastClose       `json:"last_close"`
	LoadFactor       int             `json:"load_factor"`
	Peers            int             `json:"peers"`
	PubkeyNode       string          `json:"pubkey_node"`
	ServerState      string          `json:"server_state"`
	ValidatedLedger  ValidatedLedger `json:"validated_ledger"`
	ValidationQuorum int             `json:"validation_quorum"`
}

type LastClose struct {
	ConvergeTimeS float64 `json:"converge_time_s"`
	Proposers     int     `json:"proposers"`
}

type ValidatedLedger struct {
	Age            int     `json:"age"`
	BaseFeeXRP     float64 `json:"base_fee_xrp"`
	Hash           string  `json:"hash"`
	ReserveBaseXRP float64 `json:"reserve_base_xrp"`
	ReserveIncXRP  float64 `json:"reserve_inc_xrp"`
	Sequence       uint32  `json:"seq"`
}

package types

import "encoding/json"

// Transaction is a rippled transaction with its metadata, as relayed by ripple-rest. Field names
// follow rippled's own casing. Amounts stay raw because rippled sends XRP as a string of drops and
// issued currencies as objects.
type Transaction struct {
	Account         string           `json:"Account"`
	Amount          json.RawMessage  `json:"Amount,omitempty"`
	Destination     string           `json:"Destination,omitempty"`
	Fee             string           `json:"Fee"`
	Flags           uint32           `json:"Flags"`
	Sequence        uint32           `json:"Sequence"`
	SigningPubKey   string           `json:"SigningPubKey"`
	TransactionType string           `json:"TransactionType"`
	TxnSignature    string           `json:"TxnSignature"`
	Hash            string           `json:"hash"`
	InLedger        uint32           `json:"inLedger"`
	LedgerIndex     uint32           `json:"ledger_index"`
	Meta            *TransactionMeta `json:"meta,omitempty"`
	Validated       bool             `json:"validated"`
	Date            int64            `json:"date"`
}

type TransactionMeta struct {
	AffectedNodes     []AffectedNode `json:"AffectedNodes"`
	TransactionIndex  uint32         `json:"TransactionIndex"`
	TransactionResult string         `json:"TransactionResult"`
}

type AffectedNode struct {
	ModifiedNode *ModifiedNode `json:"ModifiedNode,omitempty"`
}

type ModifiedNode struct {
	FinalFields       *FinalFields    `json:"FinalFields,omitempty"`
	LedgerEntryType   string          `json:"LedgerEntryType"`
	LedgerIndex       string          `json:"LedgerIndex"`
	PreviousFields    *PreviousFields `json:"PreviousFields,omitempty"`
	PreviousTxnID     string          `json:"PreviousTxnID,omitempty"`
	PreviousTxnLgrSeq uint32          `json:"PreviousTxnLgrSeq,omitempty"`
}

type FinalFields struct {
	Account    string          `json:"Account,omitempty"`
	Balance    json.RawMessage `json:"Balance,omitempty"`
	Flags      uint32          `json:"Flags"`
	OwnerCount uint32          `json:"OwnerCount"`
	Sequence   uint32          `json:"Sequence"`
}

type PreviousFields struct {
	Balance  json.RawMessage `json:"Balance,omitempty"`
	Sequence *uint32         `json:"Sequence,omitempty"`
}

package ripplerest

import (
	"net/url"
	"strconv"
)

// QueryPaymentsOptions filters Account.QueryPayments. Nil fields are not sent.
type QueryPaymentsOptions struct {
	SourceAccount      *string
	DestinationAccount *string
	ExcludeFailed      *bool
	StartLedger        *uint32
	EndLedger          *uint32
	EarliestFirst      *bool
	ResultsPerPage     *uint32
	Page               *uint32
}

// Values encodes the options that are set.
func (o *QueryPaymentsOptions) Values() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}
	setString(values, "source_account", o.SourceAccount)
	setString(values, "destination_account", o.DestinationAccount)
	setBool(values, "exclude_failed", o.ExcludeFailed)
	setUint(values, "start_ledger", o.StartLedger)
	setUint(values, "end_ledger", o.EndLedger)
	setBool(values, "earliest_first", o.EarliestFirst)
	setUint(values, "results_per_page", o.ResultsPerPage)
	setUint(values, "page", o.Page)
	return values
}

func setString(values url.Values, key string, v *string) {
	if v != nil {
		values.Set(key, *v)
	}
}

func setBool(values url.Values, key string, v *bool) {
	if v != nil {
		values.Set(key, strconv.FormatBool(*v))
	}
}

func setUint(values url.Values, key string, v *uint32) {
	if v != nil {
		values.Set(key, strconv.FormatUint(uint64(*v), 10))
	}
}

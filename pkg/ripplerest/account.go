package ripplerest

import (
	"context"
	"fmt"
	"strings"

	"github.com/ripplerest/ripplerest-go/internal/validators"
	"github.com/ripplerest/ripplerest-go/pkg/ripplerest/types"
)

const (
	balancesPath      = "v1/accounts/{0}/balances"
	trustlinesPath    = "v1/accounts/{0}/trustlines"
	settingsPath      = "v1/accounts/{0}/settings"
	notificationPath  = "v1/accounts/{0}/notifications/{1}"
	paymentPath       = "v1/accounts/{0}/payments/{1}"
	paymentPathsPath  = "v1/accounts/{0}/payments/paths/{1}/{2}"
	paymentsPath      = "v1/accounts/{0}/payments"
	submitPaymentPath = "v1/payments"
)

// Account is a ripple address, with the secret needed to sign for it when the account is used
// for POST operations. Every method takes the client to use; nil selects the default client.
type Account struct {
	Address string

	credential *Credential
}

type accountConfig struct {
	Address string `validate:"required,ripple_address"`
}

// NewAccount returns an account for address. secretKey may be nil for read-only use; otherwise
// it is sealed and the caller's buffer is zeroed.
func NewAccount(address string, secretKey []byte) (*Account, error) {
	if err := validators.Struct(validators.NewValidator(), &accountConfig{Address: address}); err != nil {
		return nil, fmt.Errorf("validating account: %w", err)
	}

	account := &Account{Address: address}
	if secretKey != nil {
		credential, err := NewCredential(secretKey)
		if err != nil {
			return nil, fmt.Errorf("creating credential: %w", err)
		}
		account.credential = credential
	}
	return account, nil
}

// HasSecret reports whether a can sign POST operations.
func (a *Account) HasSecret() bool {
	return a.credential != nil
}

// buildPost opens the credential only while the body is serialised.
func (a *Account) buildPost(op string, body func(secretKey types.Secret) any, pathTemplate string, args ...any) (*Request, error) {
	if a.credential == nil {
		return nil, &ConfigurationError{Op: op, Err: ErrMissingSecret}
	}

	var req *Request
	err := a.credential.Use(func(secretKey []byte) error {
		var buildErr error
		req, buildErr = BuildPost(body(secretKey), pathTemplate, args...)
		return buildErr
	})
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	return req, nil
}

func (a *Account) GetBalances(ctx context.Context, client *Client) ([]types.Balance, error) {
	const op = "GetBalances"
	client, err := resolveClient(op, client)
	if err != nil {
		return nil, err
	}

	req, err := BuildGet(balancesPath, a.Address)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	resp, err := execute[balancesResponse](ctx, client, op, req)
	if err != nil {
		return nil, fmt.Errorf("getting balances of %s: %w", a.Address, err)
	}

	return resp.Balances, nil
}

func (a *Account) GetTrustlines(ctx context.Context, client *Client) ([]types.Trustline, error) {
	const op = "GetTrustlines"
	client, err := resolveClient(op, client)
	if err != nil {
		return nil, err
	}

	req, err := BuildGet(trustlinesPath, a.Address)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	resp, err := execute[trustlinesResponse](ctx, client, op, req)
	if err != nil {
		return nil, fmt.Errorf("getting trustlines of %s: %w", a.Address, err)
	}

	return resp.Trustlines, nil
}

// AddTrustline creates or updates a trustline. allowRippling defaults to true when nil. The
// returned trustline carries the hash and ledger of the transaction that set it.
func (a *Account) AddTrustline(ctx context.Context, client *Client, trustline types.Trustline, allowRippling *bool) (*types.Trustline, error) {
	const op = "AddTrustline"
	client, err := resolveClient(op, client)
	if err != nil {
		return nil, err
	}

	rippling := true
	if allowRippling != nil {
		rippling = *allowRippling
	}

	req, err := a.buildPost(op, func(secretKey types.Secret) any {
		return addTrustlineRequest{
			RequestEnvelope: types.RequestEnvelope{Secret: secretKey},
			Trustline:       trustline,
			AllowRippling:   rippling,
		}
	}, trustlinesPath, a.Address)
	if err != nil {
		return nil, err
	}
	resp, err := execute[trustlineResponse](ctx, client, op, req)
	if err != nil {
		return nil, fmt.Errorf("adding trustline for %s: %w", a.Address, err)
	}

	result := resp.Trustline
	if result.Hash == "" {
		result.Hash = resp.Hash
	}
	if result.Ledger == "" {
		result.Ledger = resp.Ledger
	}
	return &result, nil
}

func (a *Account) GetSettings(ctx context.Context, client *Client) (*types.AccountSettings, error) {
	const op = "GetSettings"
	client, err := resolveClient(op, client)
	if err != nil {
		return nil, err
	}

	req, err := BuildGet(settingsPath, a.Address)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	resp, err := execute[settingsResponse](ctx, client, op, req)
	if err != nil {
		return nil, fmt.Errorf("getting settings of %s: %w", a.Address, err)
	}

	settings := resp.Settings
	settings.Account = a.Address
	return &settings, nil
}

// SetSettings applies settings to the account and returns the settings the server reports back.
func (a *Account) SetSettings(ctx context.Context, client *Client, settings types.AccountSettings) (*types.AccountSettings, error) {
	const op = "SetSettings"
	client, err := resolveClient(op, client)
	if err != nil {
		return nil, err
	}

	req, err := a.buildPost(op, func(secretKey types.Secret) any {
		return setSettingsRequest{
			RequestEnvelope: types.RequestEnvelope{Secret: secretKey},
			Settings:        settings,
		}
	}, settingsPath, a.Address)
	if err != nil {
		return nil, err
	}
	resp, err := execute[settingsResponse](ctx, client, op, req)
	if err != nil {
		return nil, fmt.Errorf("setting settings of %s: %w", a.Address, err)
	}

	result := resp.Settings
	result.Account = a.Address
	if result.Hash == "" {
		result.Hash = resp.Hash
	}
	if result.Ledger == "" {
		result.Ledger = resp.Ledger
	}
	return &result, nil
}

func (a *Account) GetNotification(ctx context.Context, client *Client, hash string) (*types.Notification, error) {
	const op = "GetNotification"
	client, err := resolveClient(op, client)
	if err != nil {
		return nil, err
	}

	req, err := BuildGet(notificationPath, a.Address, hash)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	resp, err := execute[notificationResponse](ctx, client, op, req)
	if err != nil {
		return nil, fmt.Errorf("getting notification %s of %s: %w", hash, a.Address, err)
	}

	notification := resp.Notification
	notification.Account = a.Address
	return &notification, nil
}

// GetPayment looks a payment up by transaction hash or client_resource_id.
func (a *Account) GetPayment(ctx context.Context, client *Client, hashOrClientResourceID string) (*types.Payment, error) {
	const op = "GetPayment"
	client, err := resolveClient(op, client)
	if err != nil {
		return nil, err
	}

	req, err := BuildGet(paymentPath, a.Address, hashOrClientResourceID)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	resp, err := execute[paymentResponse](ctx, client, op, req)
	if err != nil {
		return nil, fmt.Errorf("getting payment %s of %s: %w", hashOrClientResourceID, a.Address, err)
	}

	return &resp.Payment, nil
}

// FindPaymentPaths returns candidate payments from a to destinationAccount delivering
// destinationAmount. sourceCurrencies, when given, restricts what a may spend.
func (a *Account) FindPaymentPaths(ctx context.Context, client *Client, destinationAccount string, destinationAmount types.Amount, sourceCurrencies ...types.Issue) ([]types.Payment, error) {
	const op = "FindPaymentPaths"
	client, err := resolveClient(op, client)
	if err != nil {
		return nil, err
	}

	currencies := make([]string, 0, len(sourceCurrencies))
	for i := range sourceCurrencies {
		if err := sourceCurrencies[i].Validate(); err != nil {
			return nil, fmt.Errorf("source currency %d: %w", i, err)
		}
		currencies = append(currencies, sourceCurrencies[i].String())
	}

	req, err := BuildGet(paymentPathsPath, a.Address, destinationAccount, destinationAmount)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.WithRawQuery(strings.Join(currencies, ","))

	resp, err := execute[pathsResponse](ctx, client, op, req)
	if err != nil {
		return nil, fmt.Errorf("finding payment paths from %s to %s: %w", a.Address, destinationAccount, err)
	}

	return resp.Payments, nil
}

// QueryPayments lists the account's payments, each with its client_resource_id, in server order.
func (a *Account) QueryPayments(ctx context.Context, client *Client, opts *QueryPaymentsOptions) ([]types.Payment, error) {
	const op = "QueryPayments"
	client, err := resolveClient(op, client)
	if err != nil {
		return nil, err
	}

	req, err := BuildGet(paymentsPath, a.Address)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.WithQuery(opts.Values())

	resp, err := execute[paymentsResponse](ctx, client, op, req)
	if err != nil {
		return nil, fmt.Errorf("querying payments of %s: %w", a.Address, err)
	}

	payments := make([]types.Payment, 0, len(resp.Payments))
	for _, entry := range resp.Payments {
		payment := entry.Payment
		payment.ClientResourceID = entry.ClientResourceID
		payments = append(payments, payment)
	}
	return payments, nil
}

// SubmitPayment sends payment from a under a freshly generated client_resource_id. The returned
// payment carries the key acknowledged by the server, or the generated one when the server echoes
// none, and is the one to track. payment itself is left untouched.
func (a *Account) SubmitPayment(ctx context.Context, client *Client, payment types.Payment) (*types.Payment, error) {
	const op = "SubmitPayment"
	client, err := resolveClient(op, client)
	if err != nil {
		return nil, err
	}

	submitted := payment
	submitted.ClientResourceID = client.newID()
	submitted.SourceAccount = a.Address

	req, err := a.buildPost(op, func(secretKey types.Secret) any {
		return submitPaymentRequest{
			RequestEnvelope: types.RequestEnvelope{Secret: secretKey, ClientResourceID: submitted.ClientResourceID},
			Payment:         submitted,
		}
	}, submitPaymentPath)
	if err != nil {
		return nil, err
	}
	resp, err := execute[submitPaymentResponse](ctx, client, op, req)
	if err != nil {
		return nil, fmt.Errorf("submitting payment %s from %s: %w", submitted.ClientResourceID, a.Address, err)
	}

	if resp.ClientResourceID != "" {
		submitted.ClientResourceID = resp.ClientResourceID
	}
	return &submitted, nil
}

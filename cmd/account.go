package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/stellar/go-stellar-sdk/support/config"
	"github.com/stellar/go-stellar-sdk/support/log"
	"golang.org/x/term"

	"github.com/ripplerest/ripplerest-go/cmd/utils"
	"github.com/ripplerest/ripplerest-go/pkg/ripplerest"
	"github.com/ripplerest/ripplerest-go/pkg/ripplerest/types"
)

type accountCmd struct {
	address string
	secret  string
	client  *ripplerest.Client
}

// secretPrompter returns the prompter asking for the secret of address, or nil when stdin is not
// a terminal.
var secretPrompter = func(address string) (utils.PasswordPrompter, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, nil
	}
	return utils.NewDefaultPasswordPrompter("Secret of "+address+":", os.Stdin, os.Stderr)
}

func (c *accountCmd) Command() *cobra.Command {
	cfgOpts := config.ConfigOptions{
		utils.AddressOption(&c.address),
		utils.SecretOption(&c.secret),
	}

	cmd := &cobra.Command{
		Use:   "account",
		Short: "Query and operate a ripple account",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := utils.DefaultPersistentPreRunE(cfgOpts)(cmd, args); err != nil {
				return err
			}

			client, err := utils.NewRippleRestClient(globalOptions, metricsService)
			if err != nil {
				return err
			}
			c.client = client
			return nil
		},
	}

	cmd.AddCommand(
		c.readCommand("balances", "Prints the balances of the account", func(cmd *cobra.Command, account *ripplerest.Account) (any, error) {
			return account.GetBalances(cmd.Context(), c.client)
		}),
		c.readCommand("trustlines", "Prints the trustlines of the account", func(cmd *cobra.Command, account *ripplerest.Account) (any, error) {
			return account.GetTrustlines(cmd.Context(), c.client)
		}),
		c.readCommand("settings", "Prints the settings of the account", func(cmd *cobra.Command, account *ripplerest.Account) (any, error) {
			return account.GetSettings(cmd.Context(), c.client)
		}),
		c.notificationCommand(),
		c.paymentCommand(),
		c.pathsCommand(),
		c.paymentsCommand(),
		c.addTrustlineCommand(),
		c.setSettingsCommand(),
		c.submitPaymentCommand(),
	)

	if err := cfgOpts.Init(cmd); err != nil {
		log.Fatalf("Error initializing a config option: %s", err.Error())
	}

	return cmd
}

// readOnlyAccount returns the configured account without its secret.
func (c *accountCmd) readOnlyAccount() (*ripplerest.Account, error) {
	account, err := ripplerest.NewAccount(c.address, nil)
	if err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}
	return account, nil
}

// signingAccount returns the configured account with its secret, prompting for it on a terminal.
func (c *accountCmd) signingAccount() (*ripplerest.Account, error) {
	var prompter utils.PasswordPrompter
	if c.secret == "" {
		pp, err := secretPrompter(c.address)
		if err != nil {
			return nil, fmt.Errorf("creating password prompter: %w", err)
		}
		prompter = pp
	}

	secret, err := utils.ResolveSecret(c.secret, prompter)
	if err != nil {
		return nil, fmt.Errorf("resolving the secret of %s: %w", c.address, err)
	}
	account, err := ripplerest.NewAccount(c.address, secret)
	if err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}
	return account, nil
}

func (c *accountCmd) readCommand(use, short string, run func(*cobra.Command, *ripplerest.Account) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := c.readOnlyAccount()
			if err != nil {
				return err
			}
			result, err := run(cmd, account)
			if err != nil {
				return err
			}
			return utils.PrintJSON(cmd.OutOrStdout(), result)
		},
	}
}

func (c *accountCmd) notificationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "notification {hash}",
		Short: "Prints the notification of a transaction of the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := c.readOnlyAccount()
			if err != nil {
				return err
			}
			notification, err := account.GetNotification(cmd.Context(), c.client, args[0])
			if err != nil {
				return err
			}
			return utils.PrintJSON(cmd.OutOrStdout(), notification)
		},
	}
}

func (c *accountCmd) paymentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "payment {hash-or-client-resource-id}",
		Short: "Prints a payment of the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := c.readOnlyAccount()
			if err != nil {
				return err
			}
			payment, err := account.GetPayment(cmd.Context(), c.client, args[0])
			if err != nil {
				return err
			}
			return utils.PrintJSON(cmd.OutOrStdout(), payment)
		},
	}
}

func (c *accountCmd) pathsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "paths {destination-account} {destination-amount} [source-currency...]",
		Short: "Prints the payments that can deliver an amount to a destination",
		Long:  "Amounts are written as value+currency[+issuer], e.g. 1+USD+rIssuer. Source currencies are written as currency[+issuer].",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := types.ParseAmount(args[1])
			if err != nil {
				return fmt.Errorf("parsing destination amount: %w", err)
			}
			sourceCurrencies := make([]types.Issue, 0, len(args)-2)
			for _, arg := range args[2:] {
				issue, err := types.ParseIssue(arg)
				if err != nil {
					return fmt.Errorf("parsing source currency: %w", err)
				}
				sourceCurrencies = append(sourceCurrencies, issue)
			}

			account, err := c.readOnlyAccount()
			if err != nil {
				return err
			}
			payments, err := account.FindPaymentPaths(cmd.Context(), c.client, args[0], amount, sourceCurrencies...)
			if err != nil {
				return err
			}
			return utils.PrintJSON(cmd.OutOrStdout(), payments)
		},
	}
}

func (c *accountCmd) paymentsCommand() *cobra.Command {
	var (
		sourceAccount, destinationAccount        string
		excludeFailed, earliestFirst             bool
		startLedger, endLedger, perPage, pageNum uint32
	)

	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Prints the payment history of the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			opts := &ripplerest.QueryPaymentsOptions{}
			if flags.Changed("source-account") {
				opts.SourceAccount = &sourceAccount
			}
			if flags.Changed("destination-account") {
				opts.DestinationAccount = &destinationAccount
			}
			if flags.Changed("exclude-failed") {
				opts.ExcludeFailed = &excludeFailed
			}
			if flags.Changed("start-ledger") {
				opts.StartLedger = &startLedger
			}
			if flags.Changed("end-ledger") {
				opts.EndLedger = &endLedger
			}
			if flags.Changed("earliest-first") {
				opts.EarliestFirst = &earliestFirst
			}
			if flags.Changed("results-per-page") {
				opts.ResultsPerPage = &perPage
			}
			if flags.Changed("page") {
				opts.Page = &pageNum
			}

			account, err := c.readOnlyAccount()
			if err != nil {
				return err
			}
			payments, err := account.QueryPayments(cmd.Context(), c.client, opts)
			if err != nil {
				return err
			}
			return utils.PrintJSON(cmd.OutOrStdout(), withResourceIDs(payments))
		},
	}

	cmd.Flags().StringVar(&sourceAccount, "source-account", "", "Only payments sent by this account")
	cmd.Flags().StringVar(&destinationAccount, "destination-account", "", "Only payments received by this account")
	cmd.Flags().BoolVar(&excludeFailed, "exclude-failed", false, "Leave out failed payments")
	cmd.Flags().Uint32Var(&startLedger, "start-ledger", 0, "First ledger to search")
	cmd.Flags().Uint32Var(&endLedger, "end-ledger", 0, "Last ledger to search")
	cmd.Flags().BoolVar(&earliestFirst, "earliest-first", false, "Order the results from the oldest payment")
	cmd.Flags().Uint32Var(&perPage, "results-per-page", 0, "Number of payments per page")
	cmd.Flags().Uint32Var(&pageNum, "page", 0, "Page of results to return")

	return cmd
}

func (c *accountCmd) addTrustlineCommand() *cobra.Command {
	var (
		counterparty, currency, limit string
		allowRippling                 bool
	)

	cmd := &cobra.Command{
		Use:   "add-trustline",
		Short: "Creates or updates a trustline of the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			trustline := types.Trustline{
				Account:      c.address,
				Counterparty: counterparty,
				Currency:     currency,
				Limit:        limit,
			}
			if err := types.Validate(&trustline); err != nil {
				return err
			}
			var rippling *bool
			if cmd.Flags().Changed("allow-rippling") {
				rippling = &allowRippling
			}

			account, err := c.signingAccount()
			if err != nil {
				return err
			}
			added, err := account.AddTrustline(cmd.Context(), c.client, trustline, rippling)
			if err != nil {
				return err
			}
			return utils.PrintJSON(cmd.OutOrStdout(), added)
		},
	}

	cmd.Flags().StringVar(&counterparty, "counterparty", "", "Issuer of the currency")
	cmd.Flags().StringVar(&currency, "currency", "", "Currency code")
	cmd.Flags().StringVar(&limit, "limit", "", "Maximum amount of the currency the account accepts")
	cmd.Flags().BoolVar(&allowRippling, "allow-rippling", true, "Allow rippling through the trustline")
	for _, name := range []string{"counterparty", "currency", "limit"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Fatalf("Error marking flag %s as required: %s", name, err.Error())
		}
	}

	return cmd
}

func (c *accountCmd) setSettingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-settings {json-file}",
		Short: "Applies the account settings read from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var settings types.AccountSettings
			if err := decodeEntityFile(args[0], &settings); err != nil {
				return err
			}
			if err := types.Validate(&settings); err != nil {
				return err
			}

			account, err := c.signingAccount()
			if err != nil {
				return err
			}
			updated, err := account.SetSettings(cmd.Context(), c.client, settings)
			if err != nil {
				return err
			}
			return utils.PrintJSON(cmd.OutOrStdout(), updated)
		},
	}
}

func (c *accountCmd) submitPaymentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "submit-payment {json-file}",
		Short: "Submits the payment read from a JSON file from the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var payment types.Payment
			if err := decodeEntityFile(args[0], &payment); err != nil {
				return err
			}
			if err := types.Validate(&payment); err != nil {
				return err
			}

			account, err := c.signingAccount()
			if err != nil {
				return err
			}
			submitted, err := account.SubmitPayment(cmd.Context(), c.client, payment)
			if err != nil {
				return err
			}
			return utils.PrintJSON(cmd.OutOrStdout(), withResourceIDs([]types.Payment{*submitted})[0])
		},
	}
}

type paymentOutput struct {
	ClientResourceID string        `json:"client_resource_id"`
	Payment          types.Payment `json:"payment"`
}

// withResourceIDs pairs payments with their client resource IDs, which Payment does not marshal.
func withResourceIDs(payments []types.Payment) []paymentOutput {
	out := make([]paymentOutput, 0, len(payments))
	for _, p := range payments {
		out = append(out, paymentOutput{ClientResourceID: p.ClientResourceID, Payment: p})
	}
	return out
}

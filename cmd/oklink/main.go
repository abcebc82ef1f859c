package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/kelsos/oklink-go/client"
	"github.com/kelsos/oklink-go/explorer"
	"github.com/kelsos/oklink-go/internal/config"
	"github.com/kelsos/oklink-go/internal/logger"
	"github.com/kelsos/oklink-go/models"
)

type cliOptions struct {
	apiKey  string
	chain   string
	baseURL string
	timeout time.Duration
	json    bool
	debug   bool
	logDir  string
}

// app is built once flags and environment have been resolved
type app struct {
	config   *config.Config
	explorer *explorer.Client
	json     bool
	out      io.Writer
}

func addPersistentFlags(cmd *cobra.Command, opts *cliOptions) {
	persistent := cmd.PersistentFlags()
	persistent.StringVarP(&opts.apiKey, "api-key", "k", "", "OKLink API key")
	persistent.StringVarP(&opts.chain, "chain", "c", client.DefaultChainShortName, "Chain short name")
	persistent.StringVarP(&opts.baseURL, "base-url", "", client.DefaultBaseURL, "OKLink base URL")
	persistent.DurationVarP(&opts.timeout, "timeout", "t", client.DefaultTimeout, "Request timeout")
	persistent.BoolVarP(&opts.json, "json", "j", false, "Print the raw response envelope as JSON")
	persistent.BoolVarP(&opts.debug, "debug", "d", false, "Log requests and responses")
	persistent.StringVarP(&opts.logDir, "log-dir", "", "", "Write logs to a file in this directory")
}

// newApp loads the environment and applies only the flags set on the
// command line on top of it
func newApp(cmd *cobra.Command, opts *cliOptions) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("api-key") {
		cfg.APIKey = opts.apiKey
	}
	if flags.Changed("chain") {
		cfg.Chain = opts.chain
	}
	if flags.Changed("base-url") {
		cfg.BaseURL = opts.baseURL
	}
	if flags.Changed("timeout") {
		cfg.Timeout = opts.timeout
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if opts.logDir != "" {
		if err := logger.InitFile(opts.logDir); err != nil {
			return nil, err
		}
	}
	logger.SetDebug(cfg.Debug)

	api := client.NewAPIClient(cfg.ClientConfig(), client.WithDebugLogging(cfg.Debug))
	logger.Debug("Using chain %s at %s", cfg.Chain, cfg.BaseURL)

	return &app{config: cfg, explorer: explorer.New(api), json: opts.json, out: os.Stdout}, nil
}

func parseProtocol(value string) (models.ProtocolType, error) {
	protocol := models.ProtocolType(value)
	if value != "" && !protocol.Valid() {
		return "", fmt.Errorf("unknown protocol type %q, expected one of %v", value, models.ProtocolTypes)
	}
	return protocol, nil
}

func main() {
	logger.Init()
	defer logger.Close()

	opts := &cliOptions{}
	var current *app

	rootCmd := &cobra.Command{
		Use:           "oklink",
		Short:         "Query the OKLink blockchain explorer",
		Long:          `oklink is a CLI for the OKLink explorer API. The API key is read from OKLINK_API_KEY or --api-key.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			current = a
			return nil
		},
	}

	addPersistentFlags(rootCmd, opts)

	// summary
	var evm bool
	summaryCmd := &cobra.Command{
		Use:   "summary <address>",
		Short: "Show the summary of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			call := current.explorer.AddressSummary
			if evm {
				call = current.explorer.EVMAddressInfo
			}
			resp, err := call(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return current.print(resp, resp.Err(), func() string { return renderSummary(resp.Data) })
		},
	}
	summaryCmd.Flags().BoolVarP(&evm, "evm", "", false, "Use the EVM address information endpoint")

	// tokens
	var (
		protocol string
		contract string
		page     string
		limit    string
	)
	tokensCmd := &cobra.Command{
		Use:   "tokens <address>",
		Short: "List the token balances of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			protocolType, err := parseProtocol(protocol)
			if err != nil {
				return err
			}
			if protocolType == "" {
				protocolType = models.Token20
			}
			resp, err := current.explorer.AddressTokenBalance(cmd.Context(), args[0], protocolType, explorer.TokenBalanceOptions{
				TokenContractAddress: contract,
				Pagination:           explorer.Pagination{Page: page, Limit: limit},
			})
			if err != nil {
				return err
			}
			return current.print(resp, resp.Err(), func() string { return renderTokenBalances(resp.Data) })
		},
	}
	tokensCmd.Flags().StringVarP(&protocol, "protocol", "", string(models.Token20), "Token standard: token_20, token_721 or token_1155")
	tokensCmd.Flags().StringVarP(&contract, "contract", "", "", "Only show this token contract")
	tokensCmd.Flags().StringVarP(&page, "page", "", "", "Page number")
	tokensCmd.Flags().StringVarP(&limit, "limit", "", "", "Page size")

	// balances
	balancesCmd := &cobra.Command{
		Use:   "balances <address>...",
		Short: fmt.Sprintf("Show the native balance of up to %d addresses", explorer.MaxBalanceAddresses),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := current.explorer.BatchAddressBalances(cmd.Context(), args)
			if err != nil {
				return err
			}
			return current.print(resp, resp.Err(), func() string { return renderBalances(resp.Data) })
		},
	}

	// txs
	var history explorer.HistoryOptions
	txsCmd := &cobra.Command{
		Use:   "txs <address>",
		Short: "List the normal transactions of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := current.explorer.AddressNormalTransactions(cmd.Context(), args[0], history)
			if err != nil {
				return err
			}
			return current.print(resp, resp.Err(), func() string { return renderNormalTransactions(resp.Data) })
		},
	}
	txsCmd.Flags().StringVarP(&history.StartBlockHeight, "start", "", "", "First block height")
	txsCmd.Flags().StringVarP(&history.EndBlockHeight, "end", "", "", "Last block height")
	txsCmd.Flags().StringVarP(&history.IsFromOrTo, "direction", "", "", "Only incoming (to) or outgoing (from) transactions")
	txsCmd.Flags().StringVarP(&history.Page, "page", "", "", "Page number")
	txsCmd.Flags().StringVarP(&history.Limit, "limit", "", "", "Page size")

	// tx
	txCmd := &cobra.Command{
		Use:   "tx <txid>",
		Short: "Show the details of a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := current.explorer.TransactionDetails(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return current.print(resp, resp.Err(), func() string { return renderTransaction(resp.Data) })
		},
	}

	// token-list
	var tokenList explorer.TokenListOptions
	var tokenListProtocol string
	tokenListCmd := &cobra.Command{
		Use:   "token-list",
		Short: "List the tokens issued on the chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			protocolType, err := parseProtocol(tokenListProtocol)
			if err != nil {
				return err
			}
			tokenList.ProtocolType = protocolType
			resp, err := current.explorer.TokenList(cmd.Context(), tokenList)
			if err != nil {
				return err
			}
			return current.print(resp, resp.Err(), func() string { return renderTokenList(resp.Data) })
		},
	}
	tokenListCmd.Flags().StringVarP(&tokenListProtocol, "protocol", "", "", "Token standard: token_20, token_721 or token_1155")
	tokenListCmd.Flags().StringVarP(&tokenList.OrderBy, "order-by", "", "", "Sort order")
	tokenListCmd.Flags().StringVarP(&tokenList.Page, "page", "", "", "Page number")
	tokenListCmd.Flags().StringVarP(&tokenList.Limit, "limit", "", "", "Page size")

	// chain
	chainCmd := &cobra.Command{
		Use:   "chain",
		Short: "Show the summary of the selected chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := current.explorer.ChainSummary(cmd.Context())
			if err != nil {
				return err
			}
			return current.print(resp, resp.Err(), func() string { return renderChain(resp.Data) })
		},
	}

	rootCmd.AddCommand(summaryCmd, tokensCmd, balancesCmd, txsCmd, txCmd, tokenListCmd, chainCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("%v", err)
		stop()
		logger.Close()
		os.Exit(1)
	}
}

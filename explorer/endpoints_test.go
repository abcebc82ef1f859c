package explorer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelsos/oklink-go/models"
)

type call func(ctx context.Context, c *Client) error

type endpointCase struct {
	name     string
	path     string
	bare     call
	bareWant map[string]string
	full     call
	fullWant map[string]string
}

func with(base map[string]string, extra map[string]string) map[string]string {
	merged := map[string]string{"chainShortName": "KLAYTN"}
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

var testPage = Pagination{Page: "2", Limit: "50"}

var wantPage = map[string]string{"page": "2", "limit": "50"}

var testHistory = HistoryOptions{StartBlockHeight: "100", EndBlockHeight: "200", IsFromOrTo: "from", Pagination: testPage}

var wantHistory = with(wantPage, map[string]string{"startBlockHeight": "100", "endBlockHeight": "200", "isFromOrTo": "from"})

func endpointCases() []endpointCase {
	addr := map[string]string{"address": "0xabc"}
	addrs := map[string]string{"addresses": "0x1,0x2"}
	txs := map[string]string{"txIds": "0xt1,0xt2"}
	tx := map[string]string{"txId": "0xt1"}
	token := map[string]string{"tokenContractAddress": "0xtoken"}
	two := []string{"0x1", "0x2"}
	twoTx := []string{"0xt1", "0xt2"}

	return []endpointCase{
		{
			name: "AddressSummary", path: "/address/address-summary",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.AddressSummary(ctx, "0xabc")
				return err
			},
			bareWant: with(addr, nil),
		},
		{
			name: "EVMAddressInfo", path: "/address/information-evm",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.EVMAddressInfo(ctx, "0xabc")
				return err
			},
			bareWant: with(addr, nil),
		},
		{
			name: "AddressActiveChains", path: "/address/address-active-chain",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.AddressActiveChains(ctx, "0xabc")
				return err
			},
			bareWant: with(addr, nil),
		},
		{
			name: "AddressTokenBalance", path: "/address/token-balance",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.AddressTokenBalance(ctx, "0xabc", models.Token20, TokenBalanceOptions{})
				return err
			},
			bareWant: with(addr, map[string]string{"protocolType": "token_20"}),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.AddressTokenBalance(ctx, "0xabc", models.Token721, TokenBalanceOptions{TokenContractAddress: "0xtoken", Pagination: testPage})
				return err
			},
			fullWant: with(addr, with(wantPage, map[string]string{"protocolType": "token_721", "tokenContractAddress": "0xtoken"})),
		},
		{
			name: "AddressBalanceDetails", path: "/address/address-balance-fills",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.AddressBalanceDetails(ctx, "0xabc", models.Token1155, TokenBalanceOptions{})
				return err
			},
			bareWant: with(addr, map[string]string{"protocolType": "token_1155"}),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.AddressBalanceDetails(ctx, "0xabc", models.Token20, TokenBalanceOptions{TokenContractAddress: "0xtoken", Pagination: testPage})
				return err
			},
			fullWant: with(addr, with(wantPage, map[string]string{"protocolType": "token_20", "tokenContractAddress": "0xtoken"})),
		},
		{
			name: "AddressBalanceHistory", path: "/block/address-balance-history",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.AddressBalanceHistory(ctx, "0xabc", "1000", "")
				return err
			},
			bareWant: with(addr, map[string]string{"height": "1000"}),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.AddressBalanceHistory(ctx, "0xabc", "1000", "0xtoken")
				return err
			},
			fullWant: with(addr, map[string]string{"height": "1000", "tokenContractAddress": "0xtoken"}),
		},
		{
			name: "AddressTransactions", path: "/address/transaction-list",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.AddressTransactions(ctx, "0xabc", TransactionListOptions{})
				return err
			},
			bareWant: with(addr, nil),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.AddressTransactions(ctx, "0xabc", TransactionListOptions{
					ProtocolType: models.Token20, Symbol: "usdt", StartBlockHeight: "100", EndBlockHeight: "200",
					IsFromOrTo: "to", Pagination: testPage,
				})
				return err
			},
			fullWant: with(addr, with(wantPage, map[string]string{
				"protocolType": "token_20", "symbol": "usdt", "startBlockHeight": "100", "endBlockHeight": "200", "isFromOrTo": "to",
			})),
		},
		{
			name: "AddressNormalTransactions", path: "/address/normal-transaction-list",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.AddressNormalTransactions(ctx, "0xabc", HistoryOptions{})
				return err
			},
			bareWant: with(addr, nil),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.AddressNormalTransactions(ctx, "0xabc", testHistory)
				return err
			},
			fullWant: with(addr, wantHistory),
		},
		{
			name: "AddressInternalTransactions", path: "/address/internal-transaction-list",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.AddressInternalTransactions(ctx, "0xabc", HistoryOptions{})
				return err
			},
			bareWant: with(addr, nil),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.AddressInternalTransactions(ctx, "0xabc", testHistory)
				return err
			},
			fullWant: with(addr, wantHistory),
		},
		{
			name: "AddressTokenTransactions", path: "/address/token-transaction-list",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.AddressTokenTransactions(ctx, "0xabc", models.Token20, TokenBalanceOptions{})
				return err
			},
			bareWant: with(addr, map[string]string{"protocolType": "token_20"}),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.AddressTokenTransactions(ctx, "0xabc", models.Token20, TokenBalanceOptions{TokenContractAddress: "0xtoken", Pagination: testPage})
				return err
			},
			fullWant: with(addr, with(wantPage, map[string]string{"protocolType": "token_20", "tokenContractAddress": "0xtoken"})),
		},
		{
			name: "AddressEntityLabels", path: "/address/entity-labels",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.AddressEntityLabels(ctx, "0xabc")
				return err
			},
			bareWant: with(addr, nil),
		},
		{
			name: "BatchAddressBalances", path: "/address/balance-multi",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.BatchAddressBalances(ctx, two)
				return err
			},
			bareWant: with(addrs, nil),
		},
		{
			name: "BatchAddressTokenBalances", path: "/address/token-balance-multi",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.BatchAddressTokenBalances(ctx, two, ProtocolPageOptions{})
				return err
			},
			bareWant: with(addrs, nil),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.BatchAddressTokenBalances(ctx, two, ProtocolPageOptions{ProtocolType: models.Token721, Pagination: testPage})
				return err
			},
			fullWant: with(addrs, with(wantPage, map[string]string{"protocolType": "token_721"})),
		},
		{
			name: "BatchAddressNormalTransactions", path: "/address/normal-transaction-list-multi",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.BatchAddressNormalTransactions(ctx, two, HistoryOptions{})
				return err
			},
			bareWant: with(addrs, nil),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.BatchAddressNormalTransactions(ctx, two, testHistory)
				return err
			},
			fullWant: with(addrs, wantHistory),
		},
		{
			name: "BatchAddressInternalTransactions", path: "/address/internal-transaction-list-multi",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.BatchAddressInternalTransactions(ctx, two, HistoryOptions{})
				return err
			},
			bareWant: with(addrs, nil),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.BatchAddressInternalTransactions(ctx, two, testHistory)
				return err
			},
			fullWant: with(addrs, wantHistory),
		},
		{
			name: "BatchAddressTokenTransactions", path: "/address/token-transaction-list-multi",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.BatchAddressTokenTransactions(ctx, two, "100", "200", BatchTokenTransactionOptions{})
				return err
			},
			bareWant: with(addrs, map[string]string{"startBlockHeight": "100", "endBlockHeight": "200"}),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.BatchAddressTokenTransactions(ctx, two, "100", "200", BatchTokenTransactionOptions{
					Pagination: testPage, ProtocolType: models.Token1155, TokenContractAddress: "0xtoken", IsFromOrTo: "from",
				})
				return err
			},
			fullWant: with(addrs, with(wantPage, map[string]string{
				"startBlockHeight": "100", "endBlockHeight": "200", "protocolType": "token_1155",
				"tokenContractAddress": "0xtoken", "isFromOrTo": "from",
			})),
		},
		{
			name: "RichList", path: "/address/rich-list",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.RichList(ctx, "")
				return err
			},
			bareWant: with(nil, nil),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.RichList(ctx, "0xabc")
				return err
			},
			fullWant: with(addr, nil),
		},
		{
			name: "NativeTokenRanking", path: "/address/native-token-position-list",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.NativeTokenRanking(ctx, Pagination{})
				return err
			},
			bareWant: with(nil, nil),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.NativeTokenRanking(ctx, testPage)
				return err
			},
			fullWant: with(wantPage, nil),
		},
		{
			name: "AddressUTXO", path: "/address/utxo",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.AddressUTXO(ctx, "0xabc", Pagination{})
				return err
			},
			bareWant: with(addr, nil),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.AddressUTXO(ctx, "0xabc", testPage)
				return err
			},
			fullWant: with(addr, wantPage),
		},
		{
			name: "BlockTransactions", path: "/transaction/transaction-list",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.BlockTransactions(ctx, BlockTransactionsOptions{})
				return err
			},
			bareWant: with(nil, nil),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.BlockTransactions(ctx, BlockTransactionsOptions{BlockHash: "0xblock", Height: "42", Pagination: testPage})
				return err
			},
			fullWant: with(wantPage, map[string]string{"blockHash": "0xblock", "height": "42"}),
		},
		{
			name: "LargeTransactions", path: "/transaction/large-transaction-list",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.LargeTransactions(ctx, LargeTransactionsOptions{})
				return err
			},
			bareWant: with(nil, nil),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.LargeTransactions(ctx, LargeTransactionsOptions{Type: "100", Height: "42", Pagination: testPage})
				return err
			},
			fullWant: with(wantPage, map[string]string{"type": "100", "height": "42"}),
		},
		{
			name: "UnconfirmedTransactions", path: "/transaction/unconfirmed-transaction-list",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.UnconfirmedTransactions(ctx, Pagination{})
				return err
			},
			bareWant: with(nil, nil),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.UnconfirmedTransactions(ctx, testPage)
				return err
			},
			fullWant: with(wantPage, nil),
		},
		{
			name: "InternalTransactionDetails", path: "/transaction/internal-transaction-detail",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.InternalTransactionDetails(ctx, "0xt1", Pagination{})
				return err
			},
			bareWant: with(tx, nil),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.InternalTransactionDetails(ctx, "0xt1", testPage)
				return err
			},
			fullWant: with(tx, wantPage),
		},
		{
			name: "TokenTransactionDetails", path: "/transaction/token-transaction-detail",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.TokenTransactionDetails(ctx, "0xt1", ProtocolPageOptions{})
				return err
			},
			bareWant: with(tx, nil),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.TokenTransactionDetails(ctx, "0xt1", ProtocolPageOptions{ProtocolType: models.Token20, Pagination: testPage})
				return err
			},
			fullWant: with(tx, with(wantPage, map[string]string{"protocolType": "token_20"})),
		},
		{
			name: "TransactionDetails", path: "/transaction/transaction-fills",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.TransactionDetails(ctx, "0xt1")
				return err
			},
			bareWant: with(tx, nil),
		},
		{
			name: "BatchTransactionDetails", path: "/transaction/transaction-multi",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.BatchTransactionDetails(ctx, twoTx)
				return err
			},
			bareWant: with(txs, nil),
		},
		{
			name: "BatchInternalTransactionDetails", path: "/transaction/internal-transaction-multi",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.BatchInternalTransactionDetails(ctx, twoTx)
				return err
			},
			bareWant: with(txs, nil),
		},
		{
			name: "BatchTokenTransactionDetails", path: "/transaction/token-transfer-multi",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.BatchTokenTransactionDetails(ctx, twoTx, ProtocolPageOptions{})
				return err
			},
			bareWant: with(txs, nil),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.BatchTokenTransactionDetails(ctx, twoTx, ProtocolPageOptions{ProtocolType: models.Token721, Pagination: testPage})
				return err
			},
			fullWant: with(txs, with(wantPage, map[string]string{"protocolType": "token_721"})),
		},
		{
			name: "TokenList", path: "/token/token-list",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.TokenList(ctx, TokenListOptions{})
				return err
			},
			bareWant: with(nil, nil),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.TokenList(ctx, TokenListOptions{
					ProtocolType: models.Token20, TokenContractAddress: "0xtoken", StartTime: "1700000000000",
					EndTime: "1700003600000", OrderBy: "totalMarketCap", Pagination: testPage,
				})
				return err
			},
			fullWant: with(wantPage, map[string]string{
				"protocolType": "token_20", "tokenContractAddress": "0xtoken", "startTime": "1700000000000",
				"endTime": "1700003600000", "orderBy": "totalMarketCap",
			}),
		},
		{
			name: "TokenPositions", path: "/token/position-list",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.TokenPositions(ctx, "0xtoken", PositionOptions{})
				return err
			},
			bareWant: with(token, nil),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.TokenPositions(ctx, "0xtoken", PositionOptions{HolderAddress: "0xholder", Pagination: testPage})
				return err
			},
			fullWant: with(token, with(wantPage, map[string]string{"holderAddress": "0xholder"})),
		},
		{
			name: "TokenPositionStatistics", path: "/token/position-statistics",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.TokenPositionStatistics(ctx, "0xtoken", PositionOptions{})
				return err
			},
			bareWant: with(token, nil),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.TokenPositionStatistics(ctx, "0xtoken", PositionOptions{HolderAddress: "0xholder", Pagination: testPage})
				return err
			},
			fullWant: with(token, with(wantPage, map[string]string{"holderAddress": "0xholder"})),
		},
		{
			name: "TokenTransfers", path: "/token/transaction-list",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.TokenTransfers(ctx, "0xtoken", TokenTransferOptions{})
				return err
			},
			bareWant: with(token, nil),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.TokenTransfers(ctx, "0xtoken", TokenTransferOptions{MaxAmount: "100", MinAmount: "1", Pagination: testPage})
				return err
			},
			fullWant: with(token, with(wantPage, map[string]string{"maxAmount": "100", "minAmount": "1"})),
		},
		{
			name: "BatchTokenTransactions", path: "/token/token-transaction-list-multi",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.BatchTokenTransactions(ctx, "0xtoken", "100", "200", Pagination{})
				return err
			},
			bareWant: with(token, map[string]string{"startBlockHeight": "100", "endBlockHeight": "200"}),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.BatchTokenTransactions(ctx, "0xtoken", "100", "200", testPage)
				return err
			},
			fullWant: with(token, with(wantPage, map[string]string{"startBlockHeight": "100", "endBlockHeight": "200"})),
		},
		{
			name: "TokenSupplyHistory", path: "/token/supply-history",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.TokenSupplyHistory(ctx, "0xtoken", "42")
				return err
			},
			bareWant: with(token, map[string]string{"height": "42"}),
		},
		{
			name: "TokenTransactionStatistics", path: "/token/transaction-stats",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.TokenTransactionStatistics(ctx, "0xtoken", TokenStatsOptions{})
				return err
			},
			bareWant: with(token, nil),
			full: func(ctx context.Context, c *Client) error {
				_, err := c.TokenTransactionStatistics(ctx, "0xtoken", TokenStatsOptions{OrderBy: "txnCount", Pagination: testPage})
				return err
			},
			fullWant: with(token, with(wantPage, map[string]string{"orderBy": "txnCount"})),
		},
		{
			name: "ChainSummary", path: "/blockchain/summary",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.ChainSummary(ctx)
				return err
			},
			bareWant: with(nil, nil),
		},
		{
			name: "BlockDetails", path: "/block/block-fills",
			bare: func(ctx context.Context, c *Client) error {
				_, err := c.BlockDetails(ctx, "42")
				return err
			},
			bareWant: with(nil, map[string]string{"height": "42"}),
		},
	}
}

func TestEndpoints_OmitAbsentOptionalArguments(t *testing.T) {
	for _, tc := range endpointCases() {
		t.Run(tc.name, func(t *testing.T) {
			c, fake := newFakeOKLink(t, okEnvelope)

			require.NoError(t, tc.bare(context.Background(), c))
			require.Equal(t, 1, fake.count())

			req := fake.last(t)
			assert.Equal(t, tc.path, req.path)
			assert.Equal(t, tc.bareWant, singleValues(t, req.query))
		})
	}
}

func TestEndpoints_SendEachOptionalArgumentOnce(t *testing.T) {
	for _, tc := range endpointCases() {
		if tc.full == nil {
			continue
		}
		t.Run(tc.name, func(t *testing.T) {
			c, fake := newFakeOKLink(t, okEnvelope)

			require.NoError(t, tc.full(context.Background(), c))
			require.Equal(t, 1, fake.count())

			req := fake.last(t)
			assert.Equal(t, tc.path, req.path)
			assert.Equal(t, tc.fullWant, singleValues(t, req.query))
		})
	}
}

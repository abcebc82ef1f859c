package models

// AddressSummary describes one address on one chain
type AddressSummary struct {
	ChainRef
	Address                       string `json:"address"`
	ContractAddress               string `json:"contractAddress"`
	IsProducerAddress             bool   `json:"isProducerAddress"`
	Balance                       Amount `json:"balance"`
	BalanceSymbol                 string `json:"balanceSymbol"`
	TransactionCount              string `json:"transactionCount"`
	Verifying                     string `json:"verifying"`
	SendAmount                    Amount `json:"sendAmount"`
	ReceiveAmount                 Amount `json:"receiveAmount"`
	TokenAmount                   Amount `json:"tokenAmount"`
	TotalTokenValue               Amount `json:"totalTokenValue"`
	CreateContractAddress         string `json:"createContractAddress"`
	CreateContractTransactionHash string `json:"createContractTransactionHash"`
	FirstTransactionTime          string `json:"firstTransactionTime"`
	LastTransactionTime           string `json:"lastTransactionTime"`
	Token                         string `json:"token"`
	Bandwidth                     string `json:"bandwidth"`
	Energy                        string `json:"energy"`
	VotingRights                  string `json:"votingRights"`
	UnclaimedVotingRewards        string `json:"unclaimedVotingRewards"`
	IsAaAddress                   bool   `json:"isAaAddress"`
}

type AddressSummaryResponse = APIResponse[Items[AddressSummary]]

// ActiveChain is a chain on which an address has activity
type ActiveChain struct {
	ChainRef
	Status string `json:"status"`
}

type ActiveChainsResponse = APIResponse[Items[ActiveChain]]

// TokenHolding is one token held by an address
type TokenHolding struct {
	Symbol               string `json:"symbol"`
	TokenContractAddress string `json:"tokenContractAddress"`
	TokenType            string `json:"tokenType,omitempty"`
	HoldingAmount        Amount `json:"holdingAmount"`
	PriceUsd             Amount `json:"priceUsd"`
	ValueUsd             Amount `json:"valueUsd"`
	TokenID              string `json:"tokenId"`
}

type TokenBalancePage struct {
	Page
	ChainRef
	TokenList []TokenHolding `json:"tokenList"`
}

type TokenBalanceResponse = APIResponse[Items[TokenBalancePage]]

// BalanceAtHeight is an address balance at a given block height
type BalanceAtHeight struct {
	Address              string `json:"address"`
	Height               string `json:"height"`
	Balance              Amount `json:"balance"`
	BalanceSymbol        string `json:"balanceSymbol"`
	TokenContractAddress string `json:"tokenContractAddress"`
	BlockTime            string `json:"blockTime"`
}

type BalanceHistoryResponse = APIResponse[Items[BalanceAtHeight]]

// AddressTransaction is an entry of the combined address transaction list
type AddressTransaction struct {
	TxID                 string `json:"txId"`
	MethodID             string `json:"methodId"`
	BlockHash            string `json:"blockHash"`
	Height               string `json:"height"`
	TransactionTime      string `json:"transactionTime"`
	From                 string `json:"from"`
	To                   string `json:"to"`
	IsFromContract       bool   `json:"isFromContract"`
	IsToContract         bool   `json:"isToContract"`
	Amount               Amount `json:"amount"`
	TransactionSymbol    string `json:"transactionSymbol"`
	TxFee                Amount `json:"txFee"`
	State                string `json:"state"`
	TokenID              string `json:"tokenId"`
	TokenContractAddress string `json:"tokenContractAddress"`
	ChallengeStatus      string `json:"challengeStatus"`
	L1OriginHash         string `json:"l1OriginHash"`
}

type AddressTransactionPage struct {
	Page
	ChainRef
	TransactionLists []AddressTransaction `json:"transactionLists"`
}

type AddressTransactionsResponse = APIResponse[Items[AddressTransactionPage]]

// EntityLabel is a named entity attached to an address
type EntityLabel struct {
	Label   string `json:"label"`
	Address string `json:"address"`
}

type EntityLabelsResponse = APIResponse[Items[EntityLabel]]

// AddressBalance is a native balance from a batch balance query
type AddressBalance struct {
	Address string `json:"address"`
	Balance Amount `json:"balance"`
}

type AddressBalancePage struct {
	Page
	ChainRef
	Symbol      string           `json:"symbol"`
	BalanceList []AddressBalance `json:"balanceList"`
}

type AddressBalancesResponse = APIResponse[Items[AddressBalancePage]]

// MultiTokenBalance is a token balance from a batch token balance query
type MultiTokenBalance struct {
	Address              string `json:"address"`
	HoldingAmount        Amount `json:"holdingAmount"`
	TokenContractAddress string `json:"tokenContractAddress"`
}

type MultiTokenBalancePage struct {
	Page
	BalanceList []MultiTokenBalance `json:"balanceList"`
}

type MultiTokenBalancesResponse = APIResponse[Items[MultiTokenBalancePage]]

// RichListEntry is one of the top native token holders
type RichListEntry struct {
	Symbol           string `json:"symbol"`
	Rank             string `json:"rank"`
	Address          string `json:"address"`
	Amount           Amount `json:"amount"`
	TransactionCount string `json:"transactionCount"`
	HoldRatio        string `json:"holdRatio"`
	NetFlow7d        string `json:"netFlow7d"`
	NetFlow30d       string `json:"netFlow30d"`
}

type RichListResponse = APIResponse[Items[RichListEntry]]

type NativeTokenPosition struct {
	Rank          string `json:"rank"`
	Symbol        string `json:"symbol"`
	HolderAddress string `json:"holderAddress"`
	Amount        Amount `json:"amount"`
}

type NativeTokenPositionPage struct {
	Page
	ChainRef
	PositionList []NativeTokenPosition `json:"positionList"`
}

type NativeTokenRankingResponse = APIResponse[Items[NativeTokenPositionPage]]

// UTXO is an unspent output owned by an address
type UTXO struct {
	TxID          string `json:"txid"`
	Height        string `json:"height"`
	BlockTime     string `json:"blockTime"`
	Address       string `json:"address"`
	UnspentAmount Amount `json:"unspentAmount"`
	Index         string `json:"index"`
}

type UTXOPage struct {
	Page
	UTXOList []UTXO `json:"utxoList"`
}

type UTXOResponse = APIResponse[Items[UTXOPage]]

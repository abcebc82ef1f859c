package models

// TokenInfo describes a token contract
type TokenInfo struct {
	TokenFullName        string       `json:"tokenFullName"`
	Token                string       `json:"token"`
	Precision            string       `json:"precision"`
	TokenContractAddress string       `json:"tokenContractAddress"`
	ProtocolType         ProtocolType `json:"protocolType"`
	AddressCount         string       `json:"addressCount"`
	TotalSupply          Amount       `json:"totalSupply"`
	CirculatingSupply    Amount       `json:"circulatingSupply"`
	Price                Amount       `json:"price"`
	Website              string       `json:"website"`
	TotalMarketCap       Amount       `json:"totalMarketCap"`
	IssueDate            string       `json:"issueDate"`
	TransactionAmount24h Amount       `json:"transactionAmount24h"`
	TVL                  Amount       `json:"tvl"`
	LogoURL              string       `json:"logoUrl"`
}

type TokenInfoPage struct {
	Page
	ChainRef
	TokenList []TokenInfo `json:"tokenList"`
}

type TokenListResponse = APIResponse[Items[TokenInfoPage]]

// TokenPosition is one holder of a token
type TokenPosition struct {
	HolderAddress     string `json:"holderAddress"`
	Amount            Amount `json:"amount"`
	ValueUsd          Amount `json:"valueUsd"`
	PositionChange24h string `json:"positionChange24h"`
	Rank              string `json:"rank"`
}

type TokenPositionPage struct {
	Page
	ChainRef
	CirculatingSupply Amount          `json:"circulatingSupply"`
	PositionList      []TokenPosition `json:"positionList"`
}

type TokenPositionsResponse = APIResponse[Items[TokenPositionPage]]

// SupplyAtHeight is the supply of a token at a block height
type SupplyAtHeight struct {
	Supply    Amount `json:"supply"`
	Height    string `json:"height"`
	BlockTime string `json:"blockTime"`
}

type SupplyHistoryResponse = APIResponse[Items[SupplyAtHeight]]

// TokenStats aggregates the transfers of one address for a token
type TokenStats struct {
	Address             string `json:"address"`
	TxnCount            string `json:"txnCount"`
	TxnAmount           Amount `json:"txnAmount"`
	TxnValueUsd         Amount `json:"txnValueUsd"`
	LastTransactionTime string `json:"lastTransactionTime"`
}

type TokenStatsPage struct {
	Page
	ChainRef
	TransactionAddressList []TokenStats `json:"transactionAddressList"`
}

type TokenStatsResponse = APIResponse[Items[TokenStatsPage]]

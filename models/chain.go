package models

// ChainSummary is the headline state of a chain
type ChainSummary struct {
	ChainRef
	Symbol                      string `json:"symbol"`
	LastHeight                  string `json:"lastHeight"`
	LastBlockTime               string `json:"lastBlockTime"`
	CirculatingSupply           Amount `json:"circulatingSupply"`
	CirculatingSupplyProportion string `json:"circulatingSupplyProportion"`
	Transactions                string `json:"transactions"`
}

type ChainSummaryResponse = APIResponse[Items[ChainSummary]]

// BlockDetail describes a single block
type BlockDetail struct {
	ChainRef
	Hash           string `json:"hash"`
	Height         string `json:"height"`
	Validator      string `json:"validator"`
	BlockTime      string `json:"blockTime"`
	TxnCount       string `json:"txnCount"`
	Amount         Amount `json:"amount"`
	BlockSize      string `json:"blockSize"`
	MineReward     Amount `json:"mineReward"`
	TotalFee       Amount `json:"totalFee"`
	FeeSymbol      string `json:"feeSymbol"`
	OmmerBlock     string `json:"ommerBlock"`
	MerkleRootHash string `json:"merkleRootHash"`
	GasUsed        string `json:"gasUsed"`
	GasLimit       string `json:"gasLimit"`
	GasAvgPrice    string `json:"gasAvgPrice"`
	State          string `json:"state"`
	Burnt          string `json:"burnt"`
	Network        string `json:"netWork"`
	TxnInternal    string `json:"txnInternal"`
	Miner          string `json:"miner"`
	Nonce          string `json:"nonce"`
	Tips           string `json:"tips"`
	Confirm        string `json:"confirm"`
	BaseFeePerGas  string `json:"baseFeePerGas"`
}

type BlockDetailResponse = APIResponse[Items[BlockDetail]]

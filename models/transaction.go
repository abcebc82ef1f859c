package models

// NormalTransaction is a regular transaction of an address
type NormalTransaction struct {
	TxID            string `json:"txId"`
	MethodID        string `json:"methodId"`
	Nonce           string `json:"nonce"`
	GasPrice        string `json:"gasPrice"`
	GasLimit        string `json:"gasLimit"`
	GasUsed         string `json:"gasUsed"`
	BlockHash       string `json:"blockHash"`
	Height          string `json:"height"`
	TransactionTime string `json:"transactionTime"`
	From            string `json:"from"`
	To              string `json:"to"`
	IsFromContract  bool   `json:"isFromContract"`
	IsToContract    bool   `json:"isToContract"`
	Amount          Amount `json:"amount"`
	Symbol          string `json:"symbol"`
	TxFee           Amount `json:"txFee"`
	State           string `json:"state"`
	TransactionType string `json:"transactionType"`
}

type NormalTransactionPage struct {
	Page
	ChainRef
	TransactionList []NormalTransaction `json:"transactionList"`
}

type NormalTransactionsResponse = APIResponse[Items[NormalTransactionPage]]

type TransactionsResponse = APIResponse[Items[NormalTransaction]]

// InternalTransaction is a contract call trace
type InternalTransaction struct {
	TxID            string `json:"txId"`
	Operation       string `json:"operation"`
	BlockHash       string `json:"blockHash"`
	Height          string `json:"height"`
	TransactionTime string `json:"transactionTime"`
	From            string `json:"from"`
	To              string `json:"to"`
	IsFromContract  bool   `json:"isFromContract"`
	IsToContract    bool   `json:"isToContract"`
	Amount          Amount `json:"amount"`
	State           string `json:"state"`
	Symbol          string `json:"symbol"`
}

type InternalTransactionPage struct {
	Page
	ChainRef
	TransactionList []InternalTransaction `json:"transactionList"`
}

type InternalTransactionsResponse = APIResponse[Items[InternalTransactionPage]]

type InternalTransactionListResponse = APIResponse[Items[InternalTransaction]]

// TokenTransfer is a token movement inside a transaction
type TokenTransfer struct {
	TxID                 string `json:"txId"`
	BlockHash            string `json:"blockHash"`
	Height               string `json:"height"`
	TransactionTime      string `json:"transactionTime"`
	From                 string `json:"from"`
	To                   string `json:"to"`
	IsFromContract       bool   `json:"isFromContract"`
	IsToContract         bool   `json:"isToContract"`
	TokenContractAddress string `json:"tokenContractAddress"`
	TokenID              string `json:"tokenId"`
	Amount               Amount `json:"amount"`
	Symbol               string `json:"symbol"`
}

type TokenTransferPage struct {
	Page
	ChainRef
	TransactionList []TokenTransfer `json:"transactionList"`
}

type TokenTransfersResponse = APIResponse[Items[TokenTransferPage]]

// ChainTransaction is a transaction as listed per block or per chain
type ChainTransaction struct {
	TxID              string `json:"txid"`
	BlockHash         string `json:"blockHash"`
	Height            string `json:"height"`
	TransactionTime   string `json:"transactionTime"`
	Input             string `json:"input"`
	Output            string `json:"output"`
	IsInputContract   bool   `json:"isInputContract"`
	IsOutputContract  bool   `json:"isOutputContract"`
	Amount            Amount `json:"amount"`
	TransactionSymbol string `json:"transactionSymbol"`
	TxFee             Amount `json:"txfee"`
	MethodID          string `json:"methodId"`
	TransactionType   string `json:"transactionType"`
	State             string `json:"state"`
}

type ChainTransactionPage struct {
	Page
	ChainRef
	TransactionList []ChainTransaction `json:"transactionList"`
}

type ChainTransactionsResponse = APIResponse[Items[ChainTransactionPage]]

type InputDetail struct {
	InputHash  string `json:"inputHash"`
	IsContract bool   `json:"isContract"`
	Amount     Amount `json:"amount"`
}

type OutputDetail struct {
	OutputHash string `json:"outputHash"`
	IsContract bool   `json:"isContract"`
	Amount     Amount `json:"amount"`
}

type TokenTransferDetail struct {
	Index                string `json:"index"`
	Token                string `json:"token"`
	TokenContractAddress string `json:"tokenContractAddress"`
	Symbol               string `json:"symbol"`
	From                 string `json:"from"`
	To                   string `json:"to"`
	IsFromContract       bool   `json:"isFromContract"`
	IsToContract         bool   `json:"isToContract"`
	TokenID              string `json:"tokenId"`
	Amount               Amount `json:"amount"`
}

type ContractDetail struct {
	Index    string `json:"index"`
	From     string `json:"from"`
	To       string `json:"to"`
	Amount   Amount `json:"amount"`
	GasLimit string `json:"gasLimit"`
}

// TransactionDetail is the full view of one transaction
type TransactionDetail struct {
	ChainRef
	TxID                 string                `json:"txid"`
	Height               string                `json:"height"`
	TransactionTime      string                `json:"transactionTime"`
	Amount               Amount                `json:"amount"`
	TransactionSymbol    string                `json:"transactionSymbol"`
	TxFee                Amount                `json:"txfee"`
	Index                string                `json:"index"`
	Confirm              string                `json:"confirm"`
	InputDetails         []InputDetail         `json:"inputDetails"`
	OutputDetails        []OutputDetail        `json:"outputDetails"`
	State                string                `json:"state"`
	GasLimit             string                `json:"gasLimit"`
	GasUsed              string                `json:"gasUsed"`
	GasPrice             string                `json:"gasPrice"`
	TotalTransactionSize string                `json:"totalTransactionSize"`
	VirtualSize          string                `json:"virtualSize"`
	Weight               string                `json:"weight"`
	Nonce                string                `json:"nonce"`
	TransactionType      string                `json:"transactionType"`
	MethodID             string                `json:"methodId"`
	IsAaTransaction      bool                  `json:"isAaTransaction"`
	TokenTransferDetails []TokenTransferDetail `json:"tokenTransferDetails"`
	ContractDetails      []ContractDetail      `json:"contractDetails"`
}

type TransactionDetailResponse = APIResponse[Items[TransactionDetail]]

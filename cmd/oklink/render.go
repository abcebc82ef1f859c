package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/kelsos/oklink-go/internal/logger"
	"github.com/kelsos/oklink-go/internal/utils"
	"github.com/kelsos/oklink-go/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(26)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)
)

// print writes the envelope as JSON, or the rendered view when the upstream
// reported success
func (a *app) print(envelope interface{}, upstream error, render func() string) error {
	if a.json {
		out, err := json.MarshalIndent(envelope, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling response: %w", err)
		}
		fmt.Fprintln(a.out, string(out))
		return upstream
	}

	if upstream != nil {
		return upstream
	}

	fmt.Fprintln(a.out, render())
	return nil
}

type row struct {
	key   string
	value string
}

func section(title string, rows []row) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, titleStyle.Render(title))
	for _, r := range rows {
		value := r.value
		if value == "" {
			value = mutedStyle.Render("-")
		} else {
			value = valueStyle.Render(value)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(r.key), value))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func empty(what string) string {
	return mutedStyle.Render(fmt.Sprintf("No %s returned", what))
}

func amount(a models.Amount, symbol string) string {
	if a == "" {
		return ""
	}
	if symbol == "" {
		return a.String()
	}
	return fmt.Sprintf("%s %s", a, symbol)
}

func renderSummary(items models.Items[models.AddressSummary]) string {
	summary, ok := items.First()
	if !ok {
		return empty("address summary")
	}
	return section(summary.Address, []row{
		{"Chain", summary.ChainFullName},
		{"Balance", amount(summary.Balance, summary.BalanceSymbol)},
		{"Transactions", summary.TransactionCount},
		{"Sent", amount(summary.SendAmount, summary.BalanceSymbol)},
		{"Received", amount(summary.ReceiveAmount, summary.BalanceSymbol)},
		{"Token value", summary.TotalTokenValue.String()},
		{"Contract", summary.ContractAddress},
		{"First transaction", utils.FormatMillis(summary.FirstTransactionTime)},
		{"Last transaction", utils.FormatMillis(summary.LastTransactionTime)},
		{"Account abstraction", fmt.Sprintf("%t", summary.IsAaAddress)},
	})
}

func renderTokenBalances(items models.Items[models.TokenBalancePage]) string {
	page, ok := items.First()
	if !ok || len(page.TokenList) == 0 {
		return empty("token balances")
	}
	rows := make([]row, 0, len(page.TokenList))
	for _, token := range page.TokenList {
		key := token.Symbol
		if key == "" {
			key = token.TokenContractAddress
		}
		value := token.HoldingAmount.String()
		if token.ValueUsd != "" {
			value = fmt.Sprintf("%s (%s USD)", token.HoldingAmount, token.ValueUsd)
		}
		rows = append(rows, row{key, value})
	}
	return section(fmt.Sprintf("Tokens (page %s of %s)", page.Page.Page, page.TotalPage), rows)
}

func renderBalances(items models.Items[models.AddressBalancePage]) string {
	page, ok := items.First()
	if !ok || len(page.BalanceList) == 0 {
		return empty("balances")
	}
	total := decimal.Zero
	rows := make([]row, 0, len(page.BalanceList)+1)
	for _, balance := range page.BalanceList {
		rows = append(rows, row{balance.Address, amount(balance.Balance, page.Symbol)})
		value, err := balance.Balance.Decimal()
		if err != nil {
			logger.Warn("Skipping balance of %s from the total: %v", balance.Address, err)
			continue
		}
		total = total.Add(value)
	}
	rows = append(rows, row{"Total", strings.TrimSpace(fmt.Sprintf("%s %s", total.String(), page.Symbol))})
	return section("Balances", rows)
}

func renderNormalTransactions(items models.Items[models.NormalTransactionPage]) string {
	page, ok := items.First()
	if !ok || len(page.TransactionList) == 0 {
		return empty("transactions")
	}
	rows := make([]row, 0, len(page.TransactionList))
	for _, tx := range page.TransactionList {
		rows = append(rows, row{
			tx.Height,
			fmt.Sprintf("%s  %s -> %s  %s", tx.TxID, tx.From, tx.To, amount(tx.Amount, tx.Symbol)),
		})
	}
	return section(fmt.Sprintf("Transactions (page %s of %s)", page.Page.Page, page.TotalPage), rows)
}

func renderTransaction(items models.Items[models.TransactionDetail]) string {
	tx, ok := items.First()
	if !ok {
		return empty("transaction")
	}
	rows := []row{
		{"Chain", tx.ChainFullName},
		{"Height", tx.Height},
		{"Time", utils.FormatMillis(tx.TransactionTime)},
		{"State", tx.State},
		{"Amount", amount(tx.Amount, tx.TransactionSymbol)},
		{"Fee", amount(tx.TxFee, tx.TransactionSymbol)},
		{"Gas used / limit", strings.Trim(tx.GasUsed+" / "+tx.GasLimit, " /")},
		{"Method", tx.MethodID},
	}
	for _, in := range tx.InputDetails {
		rows = append(rows, row{"From", in.InputHash})
	}
	for _, out := range tx.OutputDetails {
		rows = append(rows, row{"To", out.OutputHash})
	}
	for _, transfer := range tx.TokenTransferDetails {
		rows = append(rows, row{"Token transfer", fmt.Sprintf("%s %s -> %s", amount(transfer.Amount, transfer.Symbol), transfer.From, transfer.To)})
	}
	return section(tx.TxID, rows)
}

func renderTokenList(items models.Items[models.TokenInfoPage]) string {
	page, ok := items.First()
	if !ok || len(page.TokenList) == 0 {
		return empty("tokens")
	}
	rows := make([]row, 0, len(page.TokenList))
	for _, token := range page.TokenList {
		rows = append(rows, row{token.Token, fmt.Sprintf("%s  %s  holders: %s", token.TokenContractAddress, token.ProtocolType, token.AddressCount)})
	}
	return section(fmt.Sprintf("Tokens on %s (page %s of %s)", page.ChainShortName, page.Page.Page, page.TotalPage), rows)
}

func renderChain(items models.Items[models.ChainSummary]) string {
	chain, ok := items.First()
	if !ok {
		return empty("chain summary")
	}
	return section(chain.ChainFullName, []row{
		{"Symbol", chain.Symbol},
		{"Last height", chain.LastHeight},
		{"Last block time", utils.FormatMillis(chain.LastBlockTime)},
		{"Circulating supply", chain.CirculatingSupply.String()},
		{"Transactions", chain.Transactions},
	})
}

package renderer

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/etnz/stash"
)

// Transaction renders one transaction as a key/value grid, with the
// account balance after the transaction was applied.
func Transaction(tx stash.Transaction, balance stash.Amount, currency string) string {
	t := newGrid()
	appendTransactionRows(t, tx, currency)
	t.AppendRow(table.Row{labelStyle.Render("Balance"), balanceStyle.Render(balance.Display(currency))})
	return t.Render()
}

// TransactionPreview renders one transaction without a balance row, the
// view shown before a delete is confirmed.
func TransactionPreview(tx stash.Transaction, currency string) string {
	t := newGrid()
	appendTransactionRows(t, tx, currency)
	return t.Render()
}

func appendTransactionRows(t table.Writer, tx stash.Transaction, currency string) {
	style := kindStyle(tx.Kind)
	t.AppendRow(table.Row{labelStyle.Render("Transaction ID"), tx.ID})
	t.AppendRow(table.Row{labelStyle.Render("Date"), tx.Date})
	t.AppendRow(table.Row{labelStyle.Render("Time"), tx.Time})
	t.AppendRow(table.Row{labelStyle.Render("Description"), tx.Description})
	t.AppendRow(table.Row{labelStyle.Render("Type"), style.Render(string(tx.Kind))})
	t.AppendRow(table.Row{labelStyle.Render("Amount"), style.Render(tx.Amount.Display(currency))})
}

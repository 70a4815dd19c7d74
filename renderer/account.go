package renderer

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/etnz/stash"
)

// Account renders one account as a key/value grid, the reference view
// shown after creating an account or before deleting one.
func Account(a stash.Account, currency string) string {
	t := newGrid()
	t.AppendRow(table.Row{labelStyle.Render("Holder's Full Name"), a.FullName})
	t.AppendRow(table.Row{labelStyle.Render("Holder's Email"), a.Email})
	t.AppendRow(table.Row{labelStyle.Render("Holder's DOB"), a.DOB.String()})
	t.AppendRow(table.Row{labelStyle.Render("Account Unique ID"), idStyle.Render(a.ID)})
	t.AppendRow(table.Row{labelStyle.Render("Account Balance"), balanceStyle.Render(a.Balance.Display(currency))})
	return t.Render()
}

// Summary renders all account summaries as one grid, in document order.
func Summary(summaries []stash.AccountSummary, currency string) string {
	t := newGrid()
	t.AppendHeader(table.Row{"full_name", "email", "dob", "id", "balance"})
	for _, s := range summaries {
		t.AppendRow(table.Row{
			s.FullName,
			s.Email,
			s.DOB.String(),
			s.ID,
			balanceStyle.Render(s.Balance.Display(currency)),
		})
	}
	return t.Render()
}

// Statement renders an account's transactions in append order, with a
// trailing total row carrying the current balance.
func Statement(s stash.Statement, currency string) string {
	t := newGrid()
	t.AppendHeader(table.Row{"transaction_id", "date", "time", "description", "type", "amount"})
	for _, tx := range s.Transactions {
		t.AppendRow(table.Row{
			tx.ID,
			tx.Date,
			tx.Time,
			tx.Description,
			kindStyle(tx.Kind).Render(string(tx.Kind)),
			kindStyle(tx.Kind).Render(tx.Amount.Display(currency)),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", labelStyle.Render("Total:"), balanceStyle.Render(s.Balance.Display(currency))})
	return t.Render()
}

package cli

import (
	"fmt"

	"github.com/amirasaad/bankist/pkg/currency"
	domainaccount "github.com/amirasaad/bankist/pkg/domain/account"
	"github.com/fatih/color"
)

var (
	depositColor    = color.New(color.FgGreen)
	withdrawalColor = color.New(color.FgRed)
	balanceColor    = color.New(color.Bold)
)

// renderStatement prints the movement rows (newest first), the balance and
// the summary, mirroring the demo's main screen.
func (c *CLI) renderStatement(acc *domainaccount.Account) {
	movements := acc.Movements()
	if c.sorted {
		movements = acc.SortedMovements()
	}
	fmt.Fprintln(c.out)
	for i := len(movements) - 1; i >= 0; i-- {
		m := movements[i]
		kind, paint := "deposit", depositColor
		if m.Amount < 0 {
			kind, paint = "withdrawal", withdrawalColor
		}
		fmt.Fprintf(c.out, "%3d %-10s  %s  %s\n",
			i+1,
			kind,
			m.At.Format("2006-01-02"),
			paint.Sprint(currency.Format(m.Amount, acc.Currency)),
		)
	}

	fmt.Fprintf(c.out, "\nBalance: %s\n",
		balanceColor.Sprint(currency.Format(acc.Balance(), acc.Currency)))

	s := acc.Summary()
	fmt.Fprintf(c.out, "In: %s  Out: %s  Interest: %s\n",
		depositColor.Sprint(currency.Format(s.Income, acc.Currency)),
		withdrawalColor.Sprint(currency.Format(s.Expense, acc.Currency)),
		depositColor.Sprint(currency.Format(s.Interest, acc.Currency)),
	)
	fmt.Fprintf(c.out, "Session time left: %ds\n", c.app.SessionService.Remaining())
}

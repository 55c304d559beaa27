// Package ledger derives totals from the transaction collection. Nothing is
// cached; every read recomputes from the full list with exact decimal math.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/dormmate/dormmate/internal/model"
)

// PayerTotal is one payer's summed expenses, for chart display.
type PayerTotal struct {
	PayerID string          `json:"payer_id"`
	Name    string          `json:"name"`
	Total   decimal.Decimal `json:"total"`
}

// Balance is the shared pool: contributions add, expenses subtract.
func Balance(txs []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		switch tx.Kind {
		case model.KindContribution:
			total = total.Add(tx.Amount)
		case model.KindExpense:
			total = total.Sub(tx.Amount)
		}
	}
	return total
}

// ExpenseByPayer sums expense-kind transactions per payer. Payers with no
// expenses are omitted. Known roommates come out in seed order so charts
// render stably; dangling payer ids trail the list labeled "Unknown".
func ExpenseByPayer(txs []model.Transaction, roommates []model.Roommate) []PayerTotal {
	sums := make(map[string]decimal.Decimal)
	var order []string
	for _, tx := range txs {
		if tx.Kind != model.KindExpense {
			continue
		}
		if _, seen := sums[tx.PayerID]; !seen {
			order = append(order, tx.PayerID)
		}
		sums[tx.PayerID] = sums[tx.PayerID].Add(tx.Amount)
	}

	var out []PayerTotal
	for _, r := range roommates {
		if total, ok := sums[r.ID]; ok {
			out = append(out, PayerTotal{PayerID: r.ID, Name: r.Name, Total: total})
			delete(sums, r.ID)
		}
	}
	for _, id := range order {
		if total, ok := sums[id]; ok {
			out = append(out, PayerTotal{PayerID: id, Name: "Unknown", Total: total})
		}
	}
	return out
}

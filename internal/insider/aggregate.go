package insider

import (
	"sort"

	"github.com/djcade32/stock-pulse/internal/model"
)

// Class partitions transaction codes into buy, sell, and everything else.
type Class int

const (
	// ClassBuy covers purchases, awards, and option exercises.
	ClassBuy Class = iota
	// ClassSell covers sales, dispositions, and gifts.
	ClassSell
	// ClassOther covers all remaining codes.
	ClassOther
)

// Classify maps a Form 4 transaction code to its class.
func Classify(code string) Class {
	switch code {
	case model.CodePurchase, model.CodeAward, model.CodeExercise:
		return ClassBuy
	case model.CodeSale, model.CodeDisposition, model.CodeGift:
		return ClassSell
	default:
		return ClassOther
	}
}

// Aggregate folds transactions into one summary row per insider name.
//
// Rows are ordered by |NetShares| descending; equal magnitudes retain the
// order in which the insider first appeared in the input. Records with a
// missing name are skipped — the only validation performed.
func Aggregate(txs []model.InsiderTransaction) []model.InsiderSummaryRow {
	rows := make(map[string]*model.InsiderSummaryRow)
	var order []string

	for _, tx := range txs {
		if tx.Name == "" {
			continue
		}

		row, ok := rows[tx.Name]
		if !ok {
			row = &model.InsiderSummaryRow{Name: tx.Name}
			rows[tx.Name] = row
			order = append(order, tx.Name)
		}

		// Zero-change records skip the totals but still count toward
		// latest-trade tracking below.
		if tx.Change != 0 {
			switch cls := Classify(tx.Code); {
			case cls == ClassBuy && tx.Change > 0:
				row.TotalBuys += tx.Change
				row.NetShares += tx.Change
			case cls == ClassSell && tx.Change < 0:
				row.TotalSells += -tx.Change
				row.NetShares += tx.Change
			default:
				// Ambiguous code/sign combination (e.g., a sell code with a
				// positive change): fold into net shares only. Lenient
				// fallback, not a drop.
				row.NetShares += tx.Change
			}
		}

		// Lexicographic comparison is valid because dates are normalized
		// to YYYY-MM-DD.
		if tx.Date > row.LastTradeDate {
			row.LastTradeDate = tx.Date
			row.LastTradeCode = tx.Code
			row.LastTradePrice = tx.Price
		}
	}

	out := make([]model.InsiderSummaryRow, 0, len(order))
	for _, name := range order {
		out = append(out, *rows[name])
	}

	sort.SliceStable(out, func(i, j int) bool {
		return abs(out[i].NetShares) > abs(out[j].NetShares)
	})

	return out
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

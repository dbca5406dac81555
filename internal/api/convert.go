package api

import "github.com/djcade32/stock-pulse/internal/model"

// ToModel converts an APIQuote to the domain Quote.
func (q *APIQuote) ToModel(symbol string, fetchedAt int64) model.Quote {
	return model.Quote{
		Symbol:        symbol,
		Current:       q.Current,
		Change:        q.Change,
		PercentChange: q.PercentChange,
		High:          q.High,
		Low:           q.Low,
		Open:          q.Open,
		PrevClose:     q.PrevClose,
		FetchedAt:     fetchedAt,
	}
}

// ToModel converts an APISymbol to the domain SymbolInfo.
func (s APISymbol) ToModel() model.SymbolInfo {
	return model.SymbolInfo{
		Symbol:      s.Symbol,
		Description: s.Description,
		Type:        s.Type,
		Currency:    s.Currency,
	}
}

// ToModel converts an APIInsiderTransaction to the domain InsiderTransaction.
// The transaction date is preferred over the filing date; the feed sometimes
// omits the former for amended filings.
func (t APIInsiderTransaction) ToModel(symbol string) model.InsiderTransaction {
	date := t.TransactionDate
	if date == "" {
		date = t.FilingDate
	}
	return model.InsiderTransaction{
		Symbol: symbol,
		Name:   t.Name,
		Change: t.Change,
		Code:   t.TransactionCode,
		Date:   date,
		Price:  t.TransactionPrice,
	}
}

// ToModel converts an APICalendarEvent to the domain MacroEvent.
func (e APICalendarEvent) ToModel() model.MacroEvent {
	return model.MacroEvent{
		Source:   e.Source,
		Title:    e.Title,
		Category: e.Category,
		Date:     e.Date,
		Time:     e.Time,
		Timezone: e.Timezone,
		SpanEnd:  e.EndDate,
	}
}

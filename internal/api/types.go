package api

// APIQuote is the vendor's quote payload.
type APIQuote struct {
	Current       float64 `json:"c"`
	Change        float64 `json:"d"`
	PercentChange float64 `json:"dp"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
	PrevClose     float64 `json:"pc"`
	Timestamp     int64   `json:"t"` // Vendor quote time (seconds since epoch)
}

// APISymbol is one entry of the vendor's symbol directory payload.
type APISymbol struct {
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Currency    string `json:"currency"`
}

// APIProfile is the vendor's company profile payload.
type APIProfile struct {
	Name     string `json:"name"`
	Ticker   string `json:"ticker"`
	Exchange string `json:"exchange"`
	Currency string `json:"currency"`
	Logo     string `json:"logo"`
}

// APIInsiderTransaction is one record of the vendor's insider feed.
type APIInsiderTransaction struct {
	Name             string  `json:"name"`
	Share            int64   `json:"share"`
	Change           int64   `json:"change"`
	FilingDate       string  `json:"filingDate"`
	TransactionDate  string  `json:"transactionDate"`
	TransactionCode  string  `json:"transactionCode"`
	TransactionPrice float64 `json:"transactionPrice"`
}

// insiderResponse wraps the insider feed payload.
type insiderResponse struct {
	Symbol string                  `json:"symbol"`
	Data   []APIInsiderTransaction `json:"data"`
}

// APICalendarEvent is one entry of the vendor's economic calendar payload.
type APICalendarEvent struct {
	Source   string `json:"source"`
	Title    string `json:"event"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Timezone string `json:"timezone"`
	EndDate  string `json:"endDate"`
}

// calendarResponse wraps the economic calendar payload.
type calendarResponse struct {
	Events []APICalendarEvent `json:"economicCalendar"`
}

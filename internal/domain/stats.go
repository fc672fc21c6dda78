package domain

// TopProduct aggregates paid sales per product for the dashboard.
type TopProduct struct {
	ProductID    int64  `json:"productId"`
	Name         string `json:"name"`
	UnitsSold    int64  `json:"unitsSold"`
	RevenueCents int64  `json:"revenueCents"`
}

// SellStat is one day of settled revenue.
type SellStat struct {
	Day          string `json:"day"`
	Orders       int64  `json:"orders"`
	RevenueCents int64  `json:"revenueCents"`
}

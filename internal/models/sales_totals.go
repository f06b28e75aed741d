package models

import "github.com/shopspring/decimal"

// SalesTotals holds running sums over a filtered result set
type SalesTotals struct {
	RecordCount   int             `json:"recordCount"`
	TotalUnits    int64           `json:"totalUnits"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	TotalDiscount decimal.Decimal `json:"totalDiscount"`
}

// Add folds one transaction into the totals
func (s *SalesTotals) Add(t *SalesTransaction) {
	s.RecordCount++
	s.TotalUnits += int64(t.Quantity)
	total := decimal.NewFromFloat(t.TotalAmount)
	s.TotalAmount = s.TotalAmount.Add(total)
	s.TotalDiscount = s.TotalDiscount.Add(total.Sub(decimal.NewFromFloat(t.FinalAmount)))
}

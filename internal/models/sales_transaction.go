package models

import (
	"errors"
)

var (
	ErrMissingTransactionID = errors.New("transaction ID must be positive")
	ErrNegativeQuantity     = errors.New("quantity cannot be negative")
	ErrNegativeAmount       = errors.New("monetary fields cannot be negative")
	ErrInvalidAge           = errors.New("age cannot be negative")
)

// SalesTransaction is a single retail sale as held by the backing store.
// Field order matches the legacy CSV export.
type SalesTransaction struct {
	TransactionID      int64      `gorm:"primaryKey;autoIncrement:false" json:"transactionId"`
	Date               string     `gorm:"type:varchar(32);not null" json:"date"`
	CustomerID         string     `gorm:"type:varchar(64);not null" json:"customerId"`
	CustomerName       string     `gorm:"type:varchar(255);not null" json:"customerName"`
	PhoneNumber        string     `gorm:"type:varchar(32);not null" json:"phoneNumber"`
	Gender             string     `gorm:"type:varchar(32);not null" json:"gender"`
	Age                int        `gorm:"not null" json:"age"`
	CustomerRegion     string     `gorm:"type:varchar(64);not null;index" json:"customerRegion"`
	CustomerType       string     `gorm:"type:varchar(64);not null" json:"customerType"`
	ProductID          string     `gorm:"type:varchar(64);not null" json:"productId"`
	ProductName        string     `gorm:"type:varchar(255);not null" json:"productName"`
	Brand              string     `gorm:"type:varchar(128);not null" json:"brand"`
	ProductCategory    string     `gorm:"type:varchar(64);not null;index" json:"productCategory"`
	Tags               StringList `gorm:"type:text;not null" json:"tags"`
	Quantity           int        `gorm:"not null" json:"quantity"`
	PricePerUnit       float64    `gorm:"not null" json:"pricePerUnit"`
	DiscountPercentage float64    `gorm:"not null" json:"discountPercentage"`
	TotalAmount        float64    `gorm:"not null" json:"totalAmount"`
	FinalAmount        float64    `gorm:"not null" json:"finalAmount"`
	PaymentMethod      string     `gorm:"type:varchar(64);not null" json:"paymentMethod"`
	OrderStatus        string     `gorm:"type:varchar(64);not null;index" json:"orderStatus"`
	DeliveryType       string     `gorm:"type:varchar(64);not null" json:"deliveryType"`
	StoreID            string     `gorm:"type:varchar(64);not null" json:"storeId"`
	StoreLocation      string     `gorm:"type:varchar(128);not null" json:"storeLocation"`
	SalespersonID      string     `gorm:"type:varchar(64);not null" json:"salespersonId"`
	EmployeeName       string     `gorm:"type:varchar(255);not null" json:"employeeName"`
}

// TableName returns the table name for SalesTransaction
func (t *SalesTransaction) TableName() string {
	return "sales_transactions"
}

// Validate checks the structural constraints a row must satisfy before it is stored.
// finalAmount <= totalAmount is expected upstream but not enforced here.
func (t *SalesTransaction) Validate() error {
	if t.TransactionID <= 0 {
		return ErrMissingTransactionID
	}
	if t.Quantity < 0 {
		return ErrNegativeQuantity
	}
	if t.Age < 0 {
		return ErrInvalidAge
	}
	if t.PricePerUnit < 0 || t.DiscountPercentage < 0 || t.TotalAmount < 0 || t.FinalAmount < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// DiscountAmount is the difference between the pre-discount and final amounts
func (t *SalesTransaction) DiscountAmount() float64 {
	return t.TotalAmount - t.FinalAmount
}

// HasAnyTag reports whether at least one of the transaction's tags is accepted
func (t *SalesTransaction) HasAnyTag(accepted map[string]struct{}) bool {
	for _, tag := range t.Tags {
		if _, ok := accepted[tag]; ok {
			return true
		}
	}
	return false
}

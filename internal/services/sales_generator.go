package services

import (
	"fmt"
	"math"
	"time"

	"sales-dashboard/internal/models"

	"github.com/brianvoe/gofakeit/v7"
)

// ProductInfo is one catalog entry the generator sells
type ProductInfo struct {
	ID        string
	Name      string
	Brand     string
	Category  string
	BasePrice int
	Tags      []string
}

var (
	generatorRegions       = []string{"North", "South", "East", "West", "Central"}
	generatorGenders       = []string{"Male", "Female"}
	generatorCustomerTypes = []string{"New", "Returning", "Loyal"}
	generatorPayments      = []string{"UPI", "Cash", "Credit Card", "Debit Card", "Wallet", "Net Banking"}
	generatorStatuses      = []string{"Completed", "Pending", "Cancelled", "Returned"}
	generatorDeliveries    = []string{"Standard", "Express", "Store Pickup"}
	generatorStores        = []string{"Mumbai", "Delhi", "Bengaluru", "Chennai", "Kolkata", "Hyderabad", "Pune"}
	generatorDiscounts     = []int{0, 0, 5, 10, 15, 20, 25}
)

type salesGenerator struct {
	faker   *gofakeit.Faker
	catalog []ProductInfo
	start   time.Time
	end     time.Time
}

// NewSalesGenerator creates a generator. The same non-zero seed always yields
// the same transactions; seed 0 picks a random seed.
func NewSalesGenerator(seed uint64) SalesGeneratorInterface {
	return &salesGenerator{
		faker:   gofakeit.New(seed),
		catalog: initializeCatalog(),
		start:   time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
		end:     time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

func initializeCatalog() []ProductInfo {
	return []ProductInfo{
		{"PROD0001", "Cotton Kurta", "FabIndia", "Clothing", 1200, []string{"cotton", "casual"}},
		{"PROD0002", "Slim Fit Jeans", "Levi's", "Clothing", 2800, []string{"casual", "denim"}},
		{"PROD0003", "Formal Shirt", "Van Heusen", "Clothing", 1900, []string{"formal", "cotton"}},
		{"PROD0004", "Running Jacket", "Puma", "Clothing", 3500, []string{"sports", "lightweight"}},
		{"PROD0005", "Silk Saree", "Nalli", "Clothing", 7500, []string{"festive", "silk"}},
		{"PROD0006", "Face Serum", "Minimalist", "Beauty", 650, []string{"skincare", "fragrance-free"}},
		{"PROD0007", "Matte Lipstick", "Lakme", "Beauty", 450, []string{"makeup", "long-lasting"}},
		{"PROD0008", "Herbal Shampoo", "Biotique", "Beauty", 320, []string{"organic", "haircare"}},
		{"PROD0009", "Sunscreen SPF 50", "Neutrogena", "Beauty", 780, []string{"skincare", "organic"}},
		{"PROD0010", "Eau de Parfum", "Forest Essentials", "Beauty", 3200, []string{"fragrance", "gift"}},
		{"PROD0011", "Wireless Earbuds", "boAt", "Electronics", 1800, []string{"wireless", "portable"}},
		{"PROD0012", "Smartwatch", "Noise", "Electronics", 4200, []string{"wireless", "fitness"}},
		{"PROD0013", "Bluetooth Speaker", "JBL", "Electronics", 5600, []string{"wireless", "portable"}},
		{"PROD0014", "Power Bank", "Mi", "Electronics", 1400, []string{"portable", "fast-charging"}},
		{"PROD0015", "Mechanical Keyboard", "Logitech", "Electronics", 6900, []string{"gaming", "wired"}},
		{"PROD0016", "Steel Water Bottle", "Milton", "Home", 550, []string{"eco-friendly", "portable"}},
		{"PROD0017", "Scented Candle Set", "Iris", "Home", 900, []string{"fragrance", "gift"}},
		{"PROD0018", "Cotton Bedsheet", "Bombay Dyeing", "Home", 1600, []string{"cotton", "comfort"}},
		{"PROD0019", "Yoga Mat", "Decathlon", "Sports", 1100, []string{"fitness", "eco-friendly"}},
		{"PROD0020", "Cricket Bat", "SG", "Sports", 2500, []string{"outdoor", "willow"}},
	}
}

// GetCatalog returns the products the generator draws from
func (g *salesGenerator) GetCatalog() []ProductInfo {
	return g.catalog
}

// SelectRandomProduct picks one catalog entry
func (g *salesGenerator) SelectRandomProduct() ProductInfo {
	return g.catalog[g.faker.Number(0, len(g.catalog)-1)]
}

// Generate returns count transactions with consecutive IDs starting at firstID
func (g *salesGenerator) Generate(count int, firstID int64) []models.SalesTransaction {
	if count <= 0 {
		return []models.SalesTransaction{}
	}
	if firstID < 1 {
		firstID = 1
	}

	out := make([]models.SalesTransaction, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, g.generateOne(firstID+int64(i)))
	}
	return out
}

func (g *salesGenerator) generateOne(id int64) models.SalesTransaction {
	product := g.SelectRandomProduct()
	quantity := g.faker.Number(1, 10)

	// +/-20% around the catalog price, rounded to whole currency units
	price := math.Round(float64(product.BasePrice) * (0.8 + 0.4*g.faker.Float64()))
	discount := float64(g.faker.RandomInt(generatorDiscounts))
	total := price * float64(quantity)
	final := math.Round(total*(100-discount)) / 100

	storeIdx := g.faker.Number(0, len(generatorStores)-1)

	return models.SalesTransaction{
		TransactionID:      id,
		Date:               g.faker.DateRange(g.start, g.end).Format("2006-01-02"),
		CustomerID:         fmt.Sprintf("CUST%05d", g.faker.Number(1, 99999)),
		CustomerName:       g.faker.Name(),
		PhoneNumber:        g.faker.Phone(),
		Gender:             g.faker.RandomString(generatorGenders),
		Age:                g.faker.Number(18, 70),
		CustomerRegion:     g.faker.RandomString(generatorRegions),
		CustomerType:       g.faker.RandomString(generatorCustomerTypes),
		ProductID:          product.ID,
		ProductName:        product.Name,
		Brand:              product.Brand,
		ProductCategory:    product.Category,
		Tags:               models.StringList(append([]string(nil), product.Tags...)),
		Quantity:           quantity,
		PricePerUnit:       price,
		DiscountPercentage: discount,
		TotalAmount:        total,
		FinalAmount:        final,
		PaymentMethod:      g.faker.RandomString(generatorPayments),
		OrderStatus:        g.faker.RandomString(generatorStatuses),
		DeliveryType:       g.faker.RandomString(generatorDeliveries),
		StoreID:            fmt.Sprintf("ST%03d", storeIdx+1),
		StoreLocation:      generatorStores[storeIdx],
		SalespersonID:      fmt.Sprintf("EMP%04d", g.faker.Number(1, 500)),
		EmployeeName:       g.faker.Name(),
	}
}

package ingest

import (
	"github.com/waldcafe/wald/internal/model"
)

// ExtractProductSales converts the data rows of a per-product export
// into a product-sales fragment. Rows narrower than the product layout
// or with a blank product code are skipped. Sales accumulate into the
// 10% or 8% slot matching the row's tax rate; unrecognized rates fall
// into the 10% slot.
func ExtractProductSales(rows [][]string) *model.Report {
	sales := &model.ProductSales{}

	for _, row := range rows {
		if len(row) < productColumns.MinFields {
			continue
		}

		code := field(row, productColumns.Code)
		if code == "" {
			continue
		}

		name := CanonicalProductName(code, field(row, productColumns.Name))
		amount := ParseNumber(field(row, productColumns.Sales))
		taxRate := ParseNumber(field(row, productColumns.TaxRate))

		totals := bucketTotals(sales, classifyProduct(name))
		switch taxRate {
		case 8:
			totals.Sales8 += amount
		case 10:
			totals.Sales10 += amount
		default:
			totals.Sales10 += amount
		}
	}

	return &model.Report{ProductSales: sales}
}

func bucketTotals(sales *model.ProductSales, bucket productBucket) *model.TaxRateTotals {
	switch bucket {
	case bucketSandwiches:
		return &sales.Sandwiches
	case bucketDrinks:
		return &sales.Drinks
	default:
		return &sales.Other
	}
}

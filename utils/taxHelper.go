package utils

import (
	"github.com/shopspring/decimal"
)

var decimalOneHundred = decimal.NewFromInt(100)

// CalculateLineAmounts returns subtotal and total for one document line.
// subtotal = qty * unitPrice, total = subtotal - discount
func CalculateLineAmounts(qty decimal.Decimal, unitPrice decimal.Decimal, discount decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	subtotal := qty.Mul(unitPrice)
	total := subtotal.Sub(discount)
	return subtotal, total
}

func CalculateDiscountAmount(subTotal decimal.Decimal, discount decimal.Decimal, discountType string) decimal.Decimal {
	var discountAmount decimal.Decimal

	if discount.GreaterThan(decimal.Zero) {
		if discountType == "P" {
			discountAmount = subTotal.Mul(discount).DivRound(decimalOneHundred, 4)
		} else {
			discountAmount = discount
		}
	} else {
		discountAmount = decimal.Zero
	}

	return discountAmount
}

// CalculatePpnPphAmount returns the aggregate tax applied to a document.
// PPN (value-added tax) is added, PPh (withholding) is deducted; both are
// independent percentage rates over the taxable base.
func CalculatePpnPphAmount(base decimal.Decimal, isPpn bool, ppnRate decimal.Decimal, isPph bool, pphRate decimal.Decimal) decimal.Decimal {
	taxAmount := decimal.Zero
	if isPpn {
		taxAmount = taxAmount.Add(base.Mul(ppnRate).DivRound(decimalOneHundred, 4))
	}
	if isPph {
		taxAmount = taxAmount.Sub(base.Mul(pphRate).DivRound(decimalOneHundred, 4))
	}
	return taxAmount
}

// CalculateDocumentTotal = base - discount + tax
func CalculateDocumentTotal(base decimal.Decimal, discountAmount decimal.Decimal, taxAmount decimal.Decimal) decimal.Decimal {
	return base.Sub(discountAmount).Add(taxAmount)
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewInvoice(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	order := Order{
		ID:          "d2f1c9a0-0000-0000-0000-000000000001",
		ClientID:    "d2f1c9a0-0000-0000-0000-000000000002",
		TotalAmount: 25000,
	}

	inv := NewInvoice(order, now)

	assert.Equal(t, order.ID, inv.OrderID)
	assert.Equal(t, order.ClientID, inv.ClientID)
	assert.Equal(t, "INV-20250615-d2f1c9a0-0000-0000-0000-000000000001", inv.InvoiceNumber)
	assert.Equal(t, 25000.0, inv.Amount)
	assert.InDelta(t, 4500.0, inv.TaxAmount, 1e-9)
	assert.InDelta(t, 29500.0, inv.TotalAmount, 1e-9)
	assert.Equal(t, now, inv.IssueDate)
	assert.Equal(t, now.AddDate(0, 0, 30), inv.DueDate)
	assert.Equal(t, PaymentStatusPending, inv.Status)
}

func TestNewInvoiceTaxIdentity(t *testing.T) {
	now := time.Now().UTC()
	for _, amount := range []float64{0, 1, 42857.142857142855, 1e6} {
		inv := NewInvoice(Order{ID: "x", TotalAmount: amount}, now)
		assert.InDelta(t, amount*VATRate, inv.TaxAmount, 1e-9)
		assert.InDelta(t, amount*(1+VATRate), inv.TotalAmount, 1e-9)
	}
}

package domain

import (
	"fmt"
	"time"
)

// VATRate is the tax rate applied to every invoice.
const VATRate = 0.18

// Invoice is the billing record derived 1:1 from an order at creation
// time. TaxAmount == Amount*VATRate and TotalAmount == Amount*(1+VATRate)
// hold by construction.
type Invoice struct {
	ID            string
	OrderID       string
	ClientID      string
	InvoiceNumber string
	Amount        float64
	TaxAmount     float64
	TotalAmount   float64
	IssueDate     time.Time
	DueDate       time.Time
	Status        string
	PaymentDate   *time.Time
	CreatedAt     time.Time
}

// NewInvoice derives the invoice for an order. The invoice number embeds
// the issue date and the order id (INV-YYYYMMDD-<order_id>), which is
// unique as long as order ids are. Due date is 30 days after issue.
func NewInvoice(order Order, now time.Time) Invoice {
	return Invoice{
		OrderID:       order.ID,
		ClientID:      order.ClientID,
		InvoiceNumber: fmt.Sprintf("INV-%s-%s", now.Format("20060102"), order.ID),
		Amount:        order.TotalAmount,
		TaxAmount:     order.TotalAmount * VATRate,
		TotalAmount:   order.TotalAmount * (1 + VATRate),
		IssueDate:     now,
		DueDate:       now.AddDate(0, 0, 30),
		Status:        PaymentStatusPending,
		CreatedAt:     now,
	}
}

package paymentgateway

import (
	"context"
	"fmt"

	"github.com/xendit/xendit-go/v6"
	"github.com/xendit/xendit-go/v6/invoice"
)

type XenditInvoiceCreator struct {
	client *xendit.APIClient
}

func NewXenditInvoiceCreator(client *xendit.APIClient) *XenditInvoiceCreator {
	return &XenditInvoiceCreator{client: client}
}

func (x *XenditInvoiceCreator) CreateInvoice(ctx context.Context, externalID string, amount int) (Invoice, error) {
	req := *invoice.NewCreateInvoiceRequest(externalID, float64(amount))

	resp, _, xerr := x.client.InvoiceApi.CreateInvoice(ctx).
		CreateInvoiceRequest(req).
		Execute()
	if xerr != nil {
		return Invoice{}, fmt.Errorf("xendit create invoice: %w", xerr)
	}

	return Invoice{
		ID:  resp.GetId(),
		URL: resp.GetInvoiceUrl(),
	}, nil
}

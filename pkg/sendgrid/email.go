package sendgrid

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/shopity/internal/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// ReceiptSender mails order receipts to the customer.
type ReceiptSender interface {
	Send(ctx context.Context, receipt *models.EmailReceipt) error
	GetSendGridClient() *sendgrid.Client
}

type receiptSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewReceiptSender(apiKey string, fromEmail string, fromName string) ReceiptSender {
	return &receiptSender{client: sendgrid.NewSendClient(apiKey), fromEmail: fromEmail, fromName: fromName}
}

// Send implements ReceiptSender.
func (r *receiptSender) Send(ctx context.Context, receipt *models.EmailReceipt) error {

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(r.fromName, r.fromEmail))

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail("", receipt.To))
	personalization.Subject = receipt.Subject
	message.AddPersonalizations(personalization)

	message.AddContent(mail.NewContent("text/plain", receipt.Text))

	if receipt.HTML != "" {
		message.AddContent(mail.NewContent("text/html", receipt.HTML))
	}

	response, err := r.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send receipt, status code: %d", response.StatusCode)
	}

	return nil
}

// GetSendGridClient provides access to the internal sendgrid.Client.
func (r *receiptSender) GetSendGridClient() *sendgrid.Client {
	return r.client
}

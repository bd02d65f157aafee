package notify

import (
	"context"
	"fmt"
	"html"
	"strings"

	"pin-packs/pkg/mail"
	"pin-packs/services/checkout/internal/entity"
)

// Sender is satisfied by *mail.Mailer.
type Sender interface {
	Send(msg mail.Message) error
}

type ConfirmationMailer struct {
	sender Sender
}

func NewConfirmationMailer(sender Sender) *ConfirmationMailer {
	return &ConfirmationMailer{sender: sender}
}

func (m *ConfirmationMailer) SendConfirmation(ctx context.Context, order *entity.Order, packIDs []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.sender.Send(confirmationMessage(order, packIDs))
}

func confirmationMessage(order *entity.Order, packIDs []string) mail.Message {
	name := order.CustomerName
	if name == "" {
		name = "there"
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Hi %s,\n\n", name)
	fmt.Fprintf(&text, "Your order %s is complete. Packs purchased: %d.\n", order.ID, len(packIDs))
	fmt.Fprintf(&text, "Payment reference: %s\n", order.PaypalOrderID)

	var body strings.Builder
	fmt.Fprintf(&body, "<p>Hi %s,</p>", html.EscapeString(name))
	fmt.Fprintf(&body, "<p>Your order <strong>%s</strong> is complete. Packs purchased: %d.</p>", html.EscapeString(order.ID), len(packIDs))
	fmt.Fprintf(&body, "<p>Payment reference: %s</p>", html.EscapeString(order.PaypalOrderID))

	return mail.Message{
		To:      order.CustomerEmail,
		Subject: "Your Pin Packs order is confirmed",
		HTML:    body.String(),
		Text:    text.String(),
	}
}

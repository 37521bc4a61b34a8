// Package notify renders and delivers the order status emails through the
// transactional mail sandbox. The dispatcher does not retry; callers decide
// how to treat a delivery failure.
package notify

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/wneessen/go-mail"

	"storefront_back_end/internal/models"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

type Mailer struct {
	cfg SMTPConfig
	log zerolog.Logger
}

func NewMailer(cfg SMTPConfig, log zerolog.Logger) *Mailer {
	return &Mailer{cfg: cfg, log: log}
}

// SendOrderEmail renders the status-specific template for o and sends a single
// message to the order's customer, tagged with the Order-<status> category.
func (m *Mailer) SendOrderEmail(ctx context.Context, o *models.Order) error {
	subject, html, text := render(o)

	msg := mail.NewMsg()
	if err := msg.FromFormat(m.cfg.FromName, m.cfg.From); err != nil {
		return err
	}
	if err := msg.AddToFormat(o.Customer.FullName, o.Customer.Email); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, text)
	msg.AddAlternativeString(mail.TypeTextHTML, html)
	msg.SetGenHeader("X-MT-Category", "Order-"+o.Status)

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return err
	}

	m.log.Info().Str("order", o.OrderNumber).Str("to", o.Customer.Email).Msg("sending order email")
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send order email: %w", err)
	}
	return nil
}

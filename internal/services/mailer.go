package services

import (
	"fmt"
	"html"
	"log"
	"strings"

	"flash_sale_back_end/internal/config"
	"flash_sale_back_end/internal/models"
	"flash_sale_back_end/internal/utils"

	"github.com/wneessen/go-mail"
)

// Mailer envoie la confirmation de commande par SMTP
type Mailer struct {
	cfg config.SMTPConfig
}

var _ OrderMailer = (*Mailer)(nil)

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// buildConfirmationMsg prépare le message sans l'envoyer
func (m *Mailer) buildConfirmationMsg(order *models.Order) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return nil, err
	}
	if err := msg.To(order.CustomerEmail); err != nil {
		return nil, err
	}
	msg.Subject(fmt.Sprintf("Flash Sale - order %s confirmed", order.OrderID))
	msg.SetBodyString(mail.TypeTextHTML, OrderConfirmationHTML(order))
	return msg, nil
}

func (m *Mailer) SendOrderConfirmation(order *models.Order) error {
	msg, err := m.buildConfirmationMsg(order)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthLogin),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", order.CustomerEmail)
	return client.DialAndSend(msg)
}

// OrderConfirmationHTML génère le HTML de confirmation. Les noms viennent du client, on les échappe.
func OrderConfirmationHTML(order *models.Order) string {
	var rows strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&rows, `
			<tr>
				<td style="padding: 10px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 10px; border: 1px solid #ddd;">%d</td>
				<td style="padding: 10px; border: 1px solid #ddd;">$%s</td>
				<td style="padding: 10px; border: 1px solid #ddd;">$%s</td>
			</tr>`,
			html.EscapeString(item.Name), item.Quantity,
			utils.FormatMoney(item.Price), utils.FormatMoney(utils.LineTotal(item)))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>Order confirmation</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Your flash sale order is confirmed</h2>
		<p>Order ID: <strong>%s</strong></p>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Product</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Quantity</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Unit price</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Total</th>
				</tr>
			</thead>
			<tbody>%s
			</tbody>
			<tfoot>
				<tr>
					<td colspan="3" style="padding: 10px; text-align: right; font-weight: bold;">Total:</td>
					<td style="padding: 10px; font-weight: bold;">$%s</td>
				</tr>
			</tfoot>
		</table>
	</div>
</body>
</html>`, order.OrderID, rows.String(), utils.FormatMoney(order.TotalAmount))
}

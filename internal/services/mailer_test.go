package services

import (
	"testing"

	"flash_sale_back_end/internal/config"
	"flash_sale_back_end/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderConfirmationHTML(t *testing.T) {
	order := &models.Order{
		OrderID: uuid.New(),
		Items: []models.LineItem{
			{ID: "a", Name: "<b>RTX</b>", Price: 10, Quantity: 2},
			{ID: "b", Name: "Cable", Price: 5, Quantity: 1},
		},
		TotalAmount: 25,
	}

	out := OrderConfirmationHTML(order)

	assert.Contains(t, out, order.OrderID.String())
	assert.Contains(t, out, "&lt;b&gt;RTX&lt;/b&gt;")
	assert.NotContains(t, out, "<b>RTX</b>")
	assert.Contains(t, out, "$20.00")
	assert.Contains(t, out, "$25.00")
}

func TestMailer_BuildConfirmationMsg(t *testing.T) {
	m := NewMailer(config.SMTPConfig{Host: "smtp.test", Port: 25, From: "shop@flashsale.io"})
	order := &models.Order{OrderID: uuid.New(), CustomerEmail: "buyer@shop.io"}

	msg, err := m.buildConfirmationMsg(order)
	require.NoError(t, err)
	to := msg.GetToString()
	require.Len(t, to, 1)
	assert.Contains(t, to[0], "buyer@shop.io")
}

func TestMailer_BuildConfirmationMsg_BadAddress(t *testing.T) {
	m := NewMailer(config.SMTPConfig{From: "shop@flashsale.io"})
	_, err := m.buildConfirmationMsg(&models.Order{CustomerEmail: "not an address"})
	assert.Error(t, err)
}

package notify

import (
	"fmt"
	"strings"

	"storefront_back_end/internal/models"
)

// render picks the template family for the order's status. An unrecognized
// status falls back to the approved layout under an "Order Update" subject.
func render(o *models.Order) (subject, html, text string) {
	switch o.Status {
	case models.StatusApproved:
		subject = fmt.Sprintf("Order Confirmed - #%s", o.OrderNumber)
		html = approvedHTML(o)
		text = fmt.Sprintf("Thank you for your order #%s. Your transaction has been approved.", o.OrderNumber)
	case models.StatusDeclined:
		subject = fmt.Sprintf("Transaction Declined - #%s", o.OrderNumber)
		html = declinedHTML(o)
		text = fmt.Sprintf("We're sorry, but your transaction for order #%s was declined.", o.OrderNumber)
	case models.StatusError:
		subject = fmt.Sprintf("Transaction Error - #%s", o.OrderNumber)
		html = errorHTML(o)
		text = fmt.Sprintf("We encountered an error processing your transaction for order #%s.", o.OrderNumber)
	default:
		subject = fmt.Sprintf("Order Update - #%s", o.OrderNumber)
		html = approvedHTML(o)
		text = fmt.Sprintf("Order update for #%s", o.OrderNumber)
	}
	return subject, html, text
}

// itemsHTML renders one block per line item: title, variant when present,
// quantity, unit price and subtotal.
func itemsHTML(o *models.Order, withPrice bool) string {
	var b strings.Builder
	for _, item := range o.Items {
		title := "Product"
		if item.Product != nil {
			title = item.Product.Title
		}
		b.WriteString(`<div style="margin-bottom: 15px; border-bottom: 1px solid #eee; padding-bottom: 15px;">`)
		fmt.Fprintf(&b, "<p><strong>Product:</strong> %s</p>", title)
		if item.Variant != "" {
			fmt.Fprintf(&b, "<p>Variant: %s</p>", item.Variant)
		}
		fmt.Fprintf(&b, "<p>Quantity: %d</p>", item.Quantity)
		if withPrice {
			fmt.Fprintf(&b, "<p>Price: $%.2f</p>", item.Price)
		}
		fmt.Fprintf(&b, "<p>Subtotal: $%.2f</p>", item.Subtotal)
		b.WriteString("</div>")
	}
	return b.String()
}

// legacyItemHTML renders the single-product block of a direct order.
func legacyItemHTML(o *models.Order) string {
	title := "Product"
	if o.Product != nil {
		title = o.Product.Title
	}
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Product: %s</p>", title)
	if o.Variant != "" {
		fmt.Fprintf(&b, "<p>Variant: %s</p>", o.Variant)
	}
	fmt.Fprintf(&b, "<p>Quantity: %d</p>", o.Quantity)
	return b.String()
}

func shippingHTML(c models.Customer) string {
	return fmt.Sprintf(`
      <h2>Shipping Information:</h2>
      <p>%s</p>
      <p>%s</p>
      <p>%s, %s %s</p>`,
		c.FullName, c.Address, c.City, c.State, c.ZipCode)
}

func approvedHTML(o *models.Order) string {
	var details string
	if len(o.Items) > 0 {
		details = itemsHTML(o, true)
	} else {
		details = legacyItemHTML(o)
	}
	return fmt.Sprintf(`
      <h1>Order Confirmed - #%s</h1>
      <p>Thank you for your purchase!</p>

      <h2>Order Details:</h2>
      %s
      <p><strong>Total: $%.2f</strong></p>
      %s

      <p>We'll notify you when your order ships!</p>`,
		o.OrderNumber, details, o.Total, shippingHTML(o.Customer))
}

func declinedHTML(o *models.Order) string {
	var details string
	if len(o.Items) > 0 {
		details = itemsHTML(o, false)
	} else {
		details = legacyItemHTML(o)
	}
	return fmt.Sprintf(`
      <h1>Transaction Declined - #%s</h1>
      <p>We're sorry, but your transaction was declined.</p>

      <h2>Order Details:</h2>
      %s
      <p><strong>Total: $%.2f</strong></p>

      <p>Please try again with a different payment method or contact your bank for assistance.</p>
      <p>If you need help, please contact our support team.</p>`,
		o.OrderNumber, details, o.Total)
}

func errorHTML(o *models.Order) string {
	var details string
	if len(o.Items) > 0 {
		details = itemsHTML(o, false)
	} else {
		details = legacyItemHTML(o)
	}
	return fmt.Sprintf(`
      <h1>Transaction Error - #%s</h1>
      <p>We're sorry, but there was an error processing your transaction.</p>

      <h2>Order Details:</h2>
      %s
      <p><strong>Total: $%.2f</strong></p>

      <p>Our team has been notified of this issue. Please try again later or contact our support team for assistance.</p>`,
		o.OrderNumber, details, o.Total)
}

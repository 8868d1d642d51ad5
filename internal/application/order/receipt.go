package order

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/HarmanGIT10/Ironic-gym-backend/internal/domain"
)

var receiptTmpl = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"dollars": func(cents int64) string { return fmt.Sprintf("$%.2f", float64(cents)/100) },
	"lineTotal": func(it domain.OrderItem) string {
		return fmt.Sprintf("$%.2f", float64(it.Price*int64(it.Quantity))/100)
	},
}).Parse(`<div style="font-family: Arial, sans-serif; line-height: 1.6; max-width: 600px; margin: auto; padding: 20px; border: 1px solid #ddd; border-radius: 8px;">
  <h2 style="color: #333;">Thank you for your order!</h2>
  <p>Hi {{.ShippingAddress.Name}},</p>
  <p>Your order has been received and is now being processed. We'll send you another email when your order has been dispatched.</p>

  <div style="background-color: #f9f9f9; padding: 15px; border-radius: 5px; margin: 20px 0;">
    <h3 style="margin-top: 0;">Order Details</h3>
    <p style="margin: 5px 0;"><strong>Order ID:</strong> {{.OrderID}}</p>
    <p style="margin: 5px 0;"><strong>Date:</strong> {{.CreatedAt.Format "Jan 2, 2006"}}</p>
    <p style="margin: 5px 0;"><strong>Total:</strong> <strong style="font-size: 1.1em; color: #000;">{{dollars .TotalPrice}} CAD</strong></p>
  </div>

  <div style="margin: 20px 0;">
    <h4 style="margin-bottom: 10px;">Shipping To:</h4>
    <p style="margin: 0;">{{.ShippingAddress.Name}}</p>
    <p style="margin: 0;">{{.ShippingAddress.AddressLine1}}</p>
    {{if .ShippingAddress.AddressLine2}}<p style="margin: 0;">{{.ShippingAddress.AddressLine2}}</p>{{end}}
    <p style="margin: 0;">{{.ShippingAddress.City}}, {{.ShippingAddress.PostalCode}}</p>
    <p style="margin: 0;">{{.ShippingAddress.Country}}</p>
  </div>

  <h4 style="margin-bottom: 10px;">Items Ordered:</h4>
  <table style="width: 100%; border-collapse: collapse;">
    <tbody>
      {{range .Items}}
      <tr>
        <td style="padding: 8px; border-bottom: 1px solid #ddd;">
          {{if .CartImageURL}}<img src="{{.CartImageURL}}" alt="{{.Name}}" width="60" style="border-radius: 4px; border: 1px solid #eee;" />{{end}}
        </td>
        <td style="padding: 8px; border-bottom: 1px solid #ddd;">{{.Name}} (x{{.Quantity}})</td>
        <td style="padding: 8px; border-bottom: 1px solid #ddd; text-align: right;">{{lineTotal .}}</td>
      </tr>
      {{end}}
    </tbody>
    <tfoot>
      <tr>
        <td style="padding-top: 15px;"></td>
        <td style="padding-top: 15px; font-weight: bold;">Total</td>
        <td style="padding-top: 15px; text-align: right; font-weight: bold;">{{dollars .TotalPrice}} CAD</td>
      </tr>
    </tfoot>
  </table>

  <p style="margin-top: 30px; font-size: 0.9em; color: #777;">If you have any questions, please reply to this email.</p>
  <p style="font-size: 0.9em; color: #777;">- The IRONIC Team</p>
</div>`))

// renderReceipt builds the order confirmation email body.
func renderReceipt(o *domain.Order) (string, error) {
	var b strings.Builder
	if err := receiptTmpl.Execute(&b, o); err != nil {
		return "", err
	}
	return b.String(), nil
}

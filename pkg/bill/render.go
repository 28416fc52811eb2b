package bill

import (
	"fmt"
	"html/template"

	"github.com/tendant/century-shop/pkg/notification"
)

// DefaultCurrency prefixes every formatted price
const DefaultCurrency = "Q"

// FormatPrice renders amount with two decimals behind the currency symbol, e.g. Q10.00
func FormatPrice(currency string, amount float64) string {
	return fmt.Sprintf("%s%.2f", currency, amount)
}

type lineItemRow struct {
	Name     string
	Quantity int
	Price    string
}

// RenderLineItems renders the order table once so every email embeds the same markup
func RenderLineItems(templates *notification.TemplateRegistry, currency string, items []LineItem) (template.HTML, error) {
	rows := make([]lineItemRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, lineItemRow{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    FormatPrice(currency, item.Price),
		})
	}
	return templates.RenderFragment(notification.LineItemsFragment, map[string]any{"Rows": rows})
}

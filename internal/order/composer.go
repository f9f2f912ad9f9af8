package order

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/velora-store/velora/internal/models"
)

// ErrMissingOrderNumber is returned when Compose is called before the
// order-creation collaborator produced an authoritative order number.
var ErrMissingOrderNumber = errors.New("order number is required")

// Message is the composer output: the prefilled-text transport URL and the
// order id embedded in it.
type Message struct {
	TransportURL string
	OrderID      string
}

// Composer renders an order summary into a messaging transport URL. It is
// configured once with the transport base (e.g. https://wa.me) and the
// fixed destination identifier of the shop's account.
type Composer struct {
	baseURL     string
	destination string
}

func NewComposer(baseURL, destination string) *Composer {
	return &Composer{
		baseURL:     strings.TrimRight(baseURL, "/"),
		destination: destination,
	}
}

// Compose renders the plain-text order message and percent-encodes it into
// the transport URL. Pure: asserting on the returned URL for given inputs
// is the supported way to test it.
//
// The total passed in is the authoritative one returned by order creation;
// subtotal and coupon are only used for the discount breakdown block.
func (c *Composer) Compose(form models.CheckoutForm, items []models.CartItem, total float64, coupon *models.Coupon, subtotal float64, orderNumber string) (Message, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return Message{}, ErrMissingOrderNumber
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🛍️ *Nuovo ordine #%s*\n\n", orderNumber)
	fmt.Fprintf(&b, "👤 Nome: %s\n", form.Name)
	fmt.Fprintf(&b, "📞 Telefono: %s\n", form.Phone)
	b.WriteString("📍 Indirizzo:\n")
	fmt.Fprintf(&b, "%s %s\n", form.Street, form.StreetNumber)
	if form.Unit != "" {
		fmt.Fprintf(&b, "%s\n", form.Unit)
	}
	fmt.Fprintf(&b, "%s %s (%s)\n", form.PostalCode, form.City, form.Province)
	if form.Latitude != nil && form.Longitude != nil {
		fmt.Fprintf(&b, "🗺️ Posizione: https://www.google.com/maps?q=%v,%v\n", *form.Latitude, *form.Longitude)
	}
	if form.Notes != "" {
		fmt.Fprintf(&b, "📝 Note: %s\n", form.Notes)
	}
	fmt.Fprintf(&b, "🚚 Consegna: %s\n", form.DeliveryMethod)

	b.WriteString("\n*Prodotti:*\n")
	for _, item := range items {
		lineTotal := item.Product.Price * float64(item.Quantity)
		fmt.Fprintf(&b, "• [%s] %s x%d — €%.2f\n", item.Product.ID, item.Product.Name, item.Quantity, lineTotal)
	}

	b.WriteString("\n")
	if coupon != nil {
		fmt.Fprintf(&b, "Subtotale: €%.2f\n", subtotal)
		fmt.Fprintf(&b, "Sconto (%s): %s\n", coupon.Code, discountLabel(coupon))
	}
	fmt.Fprintf(&b, "*Totale: €%.2f*", total)

	transportURL := fmt.Sprintf("%s/%s?text=%s", c.baseURL, c.destination, url.QueryEscape(b.String()))
	return Message{TransportURL: transportURL, OrderID: orderNumber}, nil
}

func discountLabel(coupon *models.Coupon) string {
	if coupon.DiscountType == models.DiscountPercentage {
		return fmt.Sprintf("-%.0f%%", coupon.Value)
	}
	return fmt.Sprintf("-€%.2f", coupon.Value)
}

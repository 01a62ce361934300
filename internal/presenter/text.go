package presenter

import (
	"fmt"
	"strings"

	"github.com/u23ai071-IshatS/HCI-Assignments/internal/domain"
)

const displayDateLayout = "02/01/2006"

// Text renders drafts and bookings as plain text blocks for the console.
type Text struct {
	currency string
}

func NewText(currency string) *Text {
	return &Text{currency: currency}
}

func (p *Text) Summary(d *domain.Draft) string {
	var b strings.Builder

	b.WriteString("Booking summary\n")
	p.row(&b, "Destination", fmt.Sprintf("%s (%s)", d.Destination.Name, d.Destination.AirportCode))
	p.row(&b, "Travel date", d.TravelDate.Format(displayDateLayout))
	p.passengers(&b, d.Passengers)
	p.row(&b, "Email", d.Contact.Email)
	p.row(&b, "Phone", d.Contact.Phone)
	p.cost(&b, d.Cost, d.PassengerCount)

	return strings.TrimRight(b.String(), "\n")
}

func (p *Text) Confirmation(bk *domain.Booking) string {
	var b strings.Builder

	b.WriteString("Booking confirmed\n")
	p.row(&b, "Reference", bk.Reference)
	p.row(&b, "Flight to", fmt.Sprintf("%s (%s)", bk.Destination.Name, bk.Destination.AirportCode))
	p.row(&b, "Travel date", bk.TravelDate.Format(displayDateLayout))
	p.passengers(&b, bk.Passengers)
	p.row(&b, "Paid by", bk.PaymentMethod.Label())
	p.row(&b, "Amount paid", p.money(bk.Total()))
	p.row(&b, "Sent to", bk.Contact.Email)

	return strings.TrimRight(b.String(), "\n")
}

func (p *Text) passengers(b *strings.Builder, names []string) {
	for i, name := range names {
		p.row(b, fmt.Sprintf("Passenger %d", i+1), name)
	}
}

func (p *Text) cost(b *strings.Builder, c domain.CostBreakdown, passengers int) {
	p.row(b, "Base fare", fmt.Sprintf("%s x %d", p.money(c.BaseFare), passengers))
	p.row(b, "Subtotal", p.money(c.Subtotal))
	p.row(b, "Taxes", p.money(c.Taxes))
	p.row(b, "Convenience fee", p.money(c.ConvenienceFee))
	p.row(b, "Total", p.money(c.Total()))
}

func (p *Text) money(amount int64) string {
	return fmt.Sprintf("%s %d", p.currency, amount)
}

func (p *Text) row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %-16s: %s\n", label, value)
}

package presenter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/u23ai071-IshatS/HCI-Assignments/internal/domain"
)

func TestText_Summary(t *testing.T) {
	p := NewText("INR")
	d := domain.NewDraft()
	d.Destination = domain.Destination{Name: "Delhi", AirportCode: "DEL", BaseFare: 4500}
	d.TravelDate = time.Date(2026, 10, 29, 0, 0, 0, 0, time.UTC)
	d.PassengerCount = 2
	d.Passengers = []string{"Asha", "Ravi"}
	d.Contact = domain.Contact{Email: "a@x.com", Phone: "9876543210"}
	d.Cost = domain.DefaultFarePolicy().Quote(4500, 2)

	out := p.Summary(d)

	assert.True(t, strings.HasPrefix(out, "Booking summary"))
	assert.Contains(t, out, "Delhi (DEL)")
	assert.Contains(t, out, "29/10/2026")
	assert.Contains(t, out, "Passenger 2     : Ravi")
	assert.Contains(t, out, "INR 4500 x 2")
	assert.Contains(t, out, "Subtotal        : INR 9000")
	assert.Contains(t, out, "Taxes           : INR 1080")
	assert.Contains(t, out, "Convenience fee : INR 400")
	assert.Contains(t, out, "Total           : INR 10480")
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestText_Confirmation(t *testing.T) {
	p := NewText("INR")
	b := &domain.Booking{
		Reference:     "FL123456",
		Destination:   domain.Destination{Name: "Goa", AirportCode: "GOI", BaseFare: 6000},
		TravelDate:    time.Date(2027, 1, 5, 0, 0, 0, 0, time.UTC),
		Passengers:    []string{"Meera"},
		Contact:       domain.Contact{Email: "m@x.com", Phone: "9123456789"},
		Cost:          domain.DefaultFarePolicy().Quote(6000, 1),
		PaymentMethod: domain.PaymentUPI,
	}

	out := p.Confirmation(b)

	assert.Contains(t, out, "Reference       : FL123456")
	assert.Contains(t, out, "Goa (GOI)")
	assert.Contains(t, out, "05/01/2027")
	assert.Contains(t, out, "Paid by         : UPI")
	assert.Contains(t, out, "Amount paid     : INR 6920")
	assert.Contains(t, out, "m@x.com")
}

package ports

import "github.com/u23ai071-IshatS/HCI-Assignments/internal/domain"

type Presenter interface {
	Summary(d *domain.Draft) string
	Confirmation(b *domain.Booking) string
}

package invoice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelback/internal/domain"
	"hotelback/internal/pkg/tax"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	stays StayProvider
	sales SaleProvider

	now func() time.Time
}

func NewService(stays StayProvider, sales SaleProvider) *Service {
	return &Service{
		stays: stays,
		sales: sales,
		now:   time.Now,
	}
}

// Build assembles the invoice for one stay. The only failure mode beyond
// provider errors is an unknown stay id.
func (s *Service) Build(ctx context.Context, stayID int64) (*Invoice, error) {
	stay, err := s.stays.GetByID(ctx, stayID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStayNotFound
		}
		return nil, err
	}
	if stay == nil {
		return nil, ErrStayNotFound
	}

	sales, err := s.sales.GetByStayID(ctx, stayID)
	if err != nil {
		return nil, err
	}

	inv := &Invoice{
		InvoiceNumber:      invoiceNumber(),
		IssuedAt:           s.now(),
		StayID:             stay.ID,
		GuestName:          guestName(stay),
		CheckIn:            stay.ActualCheckInDate,
		CheckOut:           stay.ActualCheckOutDate,
		AccommodationTotal: stay.TotalAmount,
		RoomTaxAmount:      tax.Portion(stay.TotalAmount, stay.TaxPercent),
		PaidAmount:         stay.PaidAmount,
	}

	if b := stay.Booking; b != nil {
		inv.RoomCharges = b.TotalPrice
		inv.NumberOfDays = b.Nights()
		days := inv.NumberOfDays
		if days < 1 {
			days = 1
		}
		inv.DailyRate = inv.RoomCharges / float64(days)

		if b.Room != nil {
			inv.RoomNumber = b.Room.Number
			if b.Room.RoomType != nil {
				inv.RoomTypeName = b.Room.RoomType.Name
			}
		}
	}

	for _, sale := range sales {
		if sale.Cancelled() {
			continue
		}
		inv.ServiceCharges += sale.TotalPrice
		paid := sale.PaymentStatus == domain.SalePaid
		if paid {
			inv.PaidServiceCharges += sale.TotalPrice
		} else {
			inv.UnpaidServiceCharges += sale.TotalPrice
		}

		name := ""
		if sale.Service != nil {
			name = sale.Service.Name
		}
		inv.Lines = append(inv.Lines, Line{
			ServiceName: name,
			Quantity:    sale.Quantity,
			UnitPrice:   sale.UnitPrice,
			TotalPrice:  sale.TotalPrice,
			Date:        sale.SaleDate,
			Paid:        paid,
		})
	}

	inv.Total = inv.RoomCharges + inv.ServiceCharges
	inv.BalanceDue = inv.Total - inv.PaidAmount - inv.PaidServiceCharges
	return inv, nil
}

// guestName prefers the flagged main guest, falling back to the booking's
// guest when no roster entry carries the flag.
func guestName(stay *domain.Stay) string {
	if mg := stay.MainGuest(); mg != nil && mg.Guest != nil {
		return mg.Guest.FullName()
	}
	if stay.Booking != nil && stay.Booking.Guest != nil {
		return stay.Booking.Guest.FullName()
	}
	return ""
}

func invoiceNumber() string {
	return fmt.Sprintf("INV-%s", uuid.NewString()[:8])
}

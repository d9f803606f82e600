package analytics

import (
	"context"
	"sort"
	"time"

	"hotelback/internal/domain"
)

// Revenue aggregates realized accommodation revenue (Stay.TotalAmount),
// non-cancelled service revenue and, separately, planned booking revenue
// for [from, to]. Planned and actual figures are reported side by side and
// never merged.
func (s *Service) Revenue(ctx context.Context, from, to time.Time) (*RevenueReport, error) {
	stays, err := s.stays.GetInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.GetInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	sales, err := s.sales.GetInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	sales = activeSales(sales)

	report := &RevenueReport{From: from, To: to, StaysCount: len(stays)}

	for _, stay := range stays {
		report.AccommodationRevenue += stay.TotalAmount
	}
	for _, sale := range sales {
		report.ServiceRevenue += sale.TotalPrice
	}
	for _, b := range bookings {
		if b.Status == domain.BookingCancelled {
			continue
		}
		report.PlannedRevenue += b.TotalPrice
	}

	report.TotalRevenue = report.AccommodationRevenue + report.ServiceRevenue
	// Flat 10% reporting estimate, kept for compatibility with the legacy
	// reports. Not derived from per-record tax percentages.
	report.TaxCollected = report.TotalRevenue * 0.10
	report.AverageStayValue = safeDiv(report.TotalRevenue, float64(len(stays)))

	report.ByRoomType = s.revenueByRoomType(stays, sales)
	return report, nil
}

func (s *Service) revenueByRoomType(stays []domain.Stay, sales []domain.ServiceSale) []RoomTypeRevenue {
	type typeAcc struct {
		row     RoomTypeRevenue
		stayIDs map[int64]bool
	}

	byType := make(map[int64]*typeAcc)
	for _, stay := range stays {
		if stay.Booking == nil || stay.Booking.Room == nil || stay.Booking.Room.RoomType == nil {
			continue
		}
		rt := stay.Booking.Room.RoomType
		acc, ok := byType[rt.ID]
		if !ok {
			acc = &typeAcc{
				row:     RoomTypeRevenue{RoomTypeID: rt.ID, RoomTypeName: rt.Name},
				stayIDs: make(map[int64]bool),
			}
			byType[rt.ID] = acc
		}
		acc.row.StaysCount++
		acc.row.AccommodationRevenue += stay.TotalAmount
		acc.stayIDs[stay.ID] = true
	}

	for _, sale := range sales {
		if sale.StayID == nil {
			continue
		}
		for _, acc := range byType {
			if acc.stayIDs[*sale.StayID] {
				acc.row.ServiceRevenue += sale.TotalPrice
				break
			}
		}
	}

	rows := make([]RoomTypeRevenue, 0, len(byType))
	for _, acc := range byType {
		acc.row.TotalRevenue = acc.row.AccommodationRevenue + acc.row.ServiceRevenue
		acc.row.AverageRate = safeDiv(acc.row.TotalRevenue, float64(acc.row.StaysCount))
		rows = append(rows, acc.row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].RoomTypeID < rows[j].RoomTypeID })
	return rows
}

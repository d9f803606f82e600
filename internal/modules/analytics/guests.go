package analytics

import (
	"context"
	"sort"
	"time"

	"hotelback/internal/domain"
)

const topGuestsLimit = 10

type guestStats struct {
	guestID   int64
	guest     *domain.Guest
	isNew     bool
	stayCount int
	spent     float64
	nights    int // nights of stays where the guest is the main guest
	mainStays int
	lastSeen  time.Time
}

// Guests segments the guests seen on stays in [from, to] into new vs
// returning, attributes revenue to main guests only, ranks the top
// spenders and breaks the whole guest population down by citizenship.
//
// "New" is a per-query classification: the guest registered inside the
// window. The same guest is "returning" against any later window.
func (s *Service) Guests(ctx context.Context, from, to time.Time) (*GuestReport, error) {
	stays, err := s.stays.GetInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	sales, err := s.sales.GetInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	sales = activeSales(sales)
	population, err := s.guests.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	report := &GuestReport{
		From:             from,
		To:               to,
		NewSegment:       GuestSegment{Segment: "new"},
		ReturningSegment: GuestSegment{Segment: "returning"},
	}

	salesByStay := make(map[int64]float64)
	for _, sale := range sales {
		if sale.StayID != nil {
			salesByStay[*sale.StayID] += sale.TotalPrice
		}
	}

	registered := make(map[int64]time.Time, len(population))
	for _, g := range population {
		registered[g.ID] = g.CreatedAt
	}

	stats := make(map[int64]*guestStats)
	endExclusive := to.AddDate(0, 0, 1)

	totalNights := 0
	for si := range stays {
		stay := &stays[si]
		nights := stay.NightsUntil(now)
		totalNights += nights

		seen := stay.ActualCheckInDate
		if stay.ActualCheckOutDate != nil {
			seen = *stay.ActualCheckOutDate
		}

		for gi := range stay.Guests {
			entry := &stay.Guests[gi]
			gs, ok := stats[entry.GuestID]
			if !ok {
				gs = &guestStats{guestID: entry.GuestID, guest: entry.Guest}
				createdAt, known := registered[entry.GuestID]
				if !known && entry.Guest != nil {
					createdAt = entry.Guest.CreatedAt
				}
				gs.isNew = !createdAt.Before(from) && createdAt.Before(endExclusive)
				stats[entry.GuestID] = gs
			}
			if gs.guest == nil && entry.Guest != nil {
				gs.guest = entry.Guest
			}
			gs.stayCount++
			if seen.After(gs.lastSeen) {
				gs.lastSeen = seen
			}
			if entry.IsMainGuest {
				// Revenue goes to the main guest only; secondary guests
				// contribute zero.
				gs.spent += stay.TotalAmount + salesByStay[stay.ID]
				gs.nights += nights
				gs.mainStays++
			}
		}
	}

	report.TotalGuests = len(stats)
	report.AverageStayDuration = safeDiv(float64(totalNights), float64(len(stays)))

	newNights, newMainStays := 0, 0
	retNights, retMainStays := 0, 0
	for _, gs := range stats {
		if gs.isNew {
			report.NewGuests++
			report.NewSegment.GuestCount++
			report.NewSegment.TotalRevenue += gs.spent
			newNights += gs.nights
			newMainStays += gs.mainStays
		} else {
			report.ReturningGuests++
			report.ReturningSegment.GuestCount++
			report.ReturningSegment.TotalRevenue += gs.spent
			retNights += gs.nights
			retMainStays += gs.mainStays
		}
	}
	report.NewSegment.AverageStayDuration = safeDiv(float64(newNights), float64(newMainStays))
	report.NewSegment.AverageSpend = safeDiv(report.NewSegment.TotalRevenue, float64(report.NewSegment.GuestCount))
	report.ReturningSegment.AverageStayDuration = safeDiv(float64(retNights), float64(retMainStays))
	report.ReturningSegment.AverageSpend = safeDiv(report.ReturningSegment.TotalRevenue, float64(report.ReturningSegment.GuestCount))

	report.TopGuests = topGuests(stats)
	report.Demographics = demographics(population)
	return report, nil
}

func topGuests(stats map[int64]*guestStats) []TopGuest {
	ranked := make([]*guestStats, 0, len(stats))
	for _, gs := range stats {
		ranked = append(ranked, gs)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].spent != ranked[j].spent {
			return ranked[i].spent > ranked[j].spent
		}
		return ranked[i].guestID < ranked[j].guestID
	})
	if len(ranked) > topGuestsLimit {
		ranked = ranked[:topGuestsLimit]
	}

	out := make([]TopGuest, 0, len(ranked))
	for _, gs := range ranked {
		name := ""
		if gs.guest != nil {
			name = gs.guest.FullName()
		}
		out = append(out, TopGuest{
			GuestID:    gs.guestID,
			GuestName:  name,
			TotalSpent: gs.spent,
			TotalStays: gs.stayCount,
			LastSeen:   gs.lastSeen,
		})
	}
	return out
}

// demographics groups the entire guest population, not just the guests
// seen in the query window.
func demographics(population []domain.Guest) []CitizenshipGroup {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, g := range population {
		name := g.Citizenship
		if name == "" {
			name = "Unknown"
		}
		if _, ok := counts[name]; !ok {
			order = append(order, name)
		}
		counts[name]++
	}

	out := make([]CitizenshipGroup, 0, len(order))
	for _, name := range order {
		out = append(out, CitizenshipGroup{
			Citizenship: name,
			GuestCount:  counts[name],
			Percentage:  safeDiv(float64(counts[name]), float64(len(population))) * 100,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].GuestCount > out[j].GuestCount })
	return out
}

package analytics

import (
	"context"
	"sort"
	"time"

	"hotelback/internal/domain"
)

// Services ranks catalogue services by popularity over [from, to] and
// produces a daily revenue series covering every calendar day of the
// range, zero-sale days included.
func (s *Service) Services(ctx context.Context, from, to time.Time) (*ServicesReport, error) {
	catalogue, err := s.catalog.GetServices(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.sales.GetInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	sales = activeSales(sales)

	report := &ServicesReport{From: from, To: to}

	for _, sale := range sales {
		report.TotalServiceRevenue += sale.TotalPrice
		report.TotalServicesOrdered += sale.Quantity
	}
	report.AverageServiceValue = safeDiv(report.TotalServiceRevenue, float64(len(sales)))

	report.Services = rankServices(catalogue, sales)
	report.Daily = dailySeries(from, to, sales)
	return report, nil
}

func rankServices(catalogue []domain.Service, sales []domain.ServiceSale) []ServicePopularity {
	names := make(map[int64]string, len(catalogue))
	for _, svc := range catalogue {
		names[svc.ID] = svc.Name
	}

	byService := make(map[int64]*ServicePopularity)
	order := make([]int64, 0)
	for _, sale := range sales {
		row, ok := byService[sale.ServiceID]
		if !ok {
			name := names[sale.ServiceID]
			if name == "" && sale.Service != nil {
				name = sale.Service.Name
			}
			row = &ServicePopularity{ServiceID: sale.ServiceID, ServiceName: name}
			byService[sale.ServiceID] = row
			order = append(order, sale.ServiceID)
		}
		row.TimesOrdered += sale.Quantity
		row.TotalRevenue += sale.TotalPrice
	}

	// Services with zero orders never enter byService, so they are dropped
	// already. Stable sort keeps first-sale order between ties.
	rows := make([]ServicePopularity, 0, len(order))
	for _, id := range order {
		rows = append(rows, *byService[id])
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TimesOrdered > rows[j].TimesOrdered })
	for i := range rows {
		rows[i].PopularityRank = i + 1
	}
	return rows
}

func dailySeries(from, to time.Time, sales []domain.ServiceSale) []DailyServiceRevenue {
	type bucket struct {
		count   int
		revenue float64
	}
	byDay := make(map[string]*bucket)
	for _, sale := range sales {
		key := sale.SaleDate.UTC().Format("2006-01-02")
		b, ok := byDay[key]
		if !ok {
			b = &bucket{}
			byDay[key] = b
		}
		b.count += sale.Quantity
		b.revenue += sale.TotalPrice
	}

	out := make([]DailyServiceRevenue, 0, daysInclusive(from, to))
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		entry := DailyServiceRevenue{Date: day}
		if b, ok := byDay[day.UTC().Format("2006-01-02")]; ok {
			entry.OrderCount = b.count
			entry.Revenue = b.revenue
		}
		out = append(out, entry)
	}
	return out
}

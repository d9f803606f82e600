package export

import (
	"fmt"
	"time"

	"hotelback/internal/modules/analytics"
	"hotelback/internal/modules/invoice"

	"github.com/xuri/excelize/v2"
)

const sheet = "Sheet1"

func setRow(f *excelize.File, row int, values ...interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func periodString(from, to time.Time) string {
	return fmt.Sprintf("%s - %s", from.Format("2006-01-02"), to.Format("2006-01-02"))
}

func renderRevenue(f *excelize.File, l labelSet, r *analytics.RevenueReport) error {
	rows := [][]interface{}{
		{l.get("report.revenue")},
		{l.get("period"), periodString(r.From, r.To)},
		{},
		{l.get("accommodation_revenue"), r.AccommodationRevenue},
		{l.get("service_revenue"), r.ServiceRevenue},
		{l.get("total_revenue"), r.TotalRevenue},
		{l.get("planned_revenue"), r.PlannedRevenue},
		{l.get("tax_collected"), r.TaxCollected},
		{l.get("stays_count"), r.StaysCount},
		{l.get("average_stay_value"), r.AverageStayValue},
		{},
		{l.get("room_type"), l.get("stays_count"), l.get("accommodation_revenue"), l.get("service_revenue"), l.get("total_revenue"), l.get("average_rate")},
	}
	for _, rt := range r.ByRoomType {
		rows = append(rows, []interface{}{rt.RoomTypeName, rt.StaysCount, rt.AccommodationRevenue, rt.ServiceRevenue, rt.TotalRevenue, rt.AverageRate})
	}
	return writeRows(f, rows)
}

func renderOccupancy(f *excelize.File, l labelSet, r *analytics.OccupancyReport) error {
	rows := [][]interface{}{
		{l.get("report.occupancy")},
		{l.get("period"), periodString(r.From, r.To)},
		{l.get("total_days"), r.TotalDays},
		{l.get("available_nights"), r.AvailableRoomNights},
		{l.get("occupied_nights"), r.OccupiedNights},
		{l.get("occupancy_rate"), r.AverageOccupancyRate},
		{},
		{l.get("room"), l.get("room_type"), l.get("occupied_nights"), l.get("occupancy_rate")},
	}
	for _, room := range r.Rooms {
		rows = append(rows, []interface{}{room.RoomNumber, room.RoomTypeName, room.OccupiedNights, room.OccupancyRate})
	}
	rows = append(rows, []interface{}{},
		[]interface{}{l.get("room_type"), l.get("available_nights"), l.get("occupied_nights"), l.get("occupancy_rate")})
	for _, rt := range r.ByRoomType {
		rows = append(rows, []interface{}{rt.RoomTypeName, rt.AvailableNights, rt.OccupiedNights, rt.OccupancyRate})
	}
	return writeRows(f, rows)
}

func renderServices(f *excelize.File, l labelSet, r *analytics.ServicesReport) error {
	rows := [][]interface{}{
		{l.get("report.services")},
		{l.get("period"), periodString(r.From, r.To)},
		{l.get("total_revenue"), r.TotalServiceRevenue},
		{l.get("times_ordered"), r.TotalServicesOrdered},
		{l.get("average_spend"), r.AverageServiceValue},
		{},
		{l.get("popularity_rank"), l.get("service"), l.get("times_ordered"), l.get("revenue")},
	}
	for _, svc := range r.Services {
		rows = append(rows, []interface{}{svc.PopularityRank, svc.ServiceName, svc.TimesOrdered, svc.TotalRevenue})
	}
	rows = append(rows, []interface{}{},
		[]interface{}{l.get("date"), l.get("order_count"), l.get("revenue")})
	for _, day := range r.Daily {
		rows = append(rows, []interface{}{day.Date.Format("2006-01-02"), day.OrderCount, day.Revenue})
	}
	return writeRows(f, rows)
}

func renderGuests(f *excelize.File, l labelSet, r *analytics.GuestReport) error {
	rows := [][]interface{}{
		{l.get("report.guests")},
		{l.get("period"), periodString(r.From, r.To)},
		{l.get("total_guests"), r.TotalGuests},
		{l.get("new_guests"), r.NewGuests},
		{l.get("returning_guests"), r.ReturningGuests},
		{l.get("average_stay_duration"), r.AverageStayDuration},
		{},
		{l.get("segment"), l.get("guest_count"), l.get("total_revenue"), l.get("average_stay_duration"), l.get("average_spend")},
	}
	for _, seg := range []analytics.GuestSegment{r.NewSegment, r.ReturningSegment} {
		segName := l.get("new_guests")
		if seg.Segment == "returning" {
			segName = l.get("returning_guests")
		}
		rows = append(rows, []interface{}{segName, seg.GuestCount, seg.TotalRevenue, seg.AverageStayDuration, seg.AverageSpend})
	}
	rows = append(rows, []interface{}{},
		[]interface{}{l.get("guest"), l.get("total_spent"), l.get("total_stays"), l.get("last_seen")})
	for _, top := range r.TopGuests {
		rows = append(rows, []interface{}{top.GuestName, top.TotalSpent, top.TotalStays, top.LastSeen.Format("2006-01-02")})
	}
	rows = append(rows, []interface{}{},
		[]interface{}{l.get("citizenship"), l.get("guest_count"), l.get("percentage")})
	for _, group := range r.Demographics {
		rows = append(rows, []interface{}{group.Citizenship, group.GuestCount, group.Percentage})
	}
	return writeRows(f, rows)
}

func renderInvoice(f *excelize.File, l labelSet, inv *invoice.Invoice) error {
	checkOut := ""
	if inv.CheckOut != nil {
		checkOut = inv.CheckOut.Format("2006-01-02")
	}
	rows := [][]interface{}{
		{l.get("report.invoice"), inv.InvoiceNumber},
		{l.get("guest_name"), inv.GuestName},
		{l.get("room"), inv.RoomNumber, inv.RoomTypeName},
		{l.get("check_in"), inv.CheckIn.Format("2006-01-02")},
		{l.get("check_out"), checkOut},
		{l.get("number_of_days"), inv.NumberOfDays},
		{l.get("daily_rate"), inv.DailyRate},
		{l.get("room_charges"), inv.RoomCharges},
		{l.get("room_tax_amount"), inv.RoomTaxAmount},
		{l.get("service_charges"), inv.ServiceCharges},
		{l.get("paid_service_charges"), inv.PaidServiceCharges},
		{l.get("unpaid_service_charges"), inv.UnpaidServiceCharges},
		{l.get("total"), inv.Total},
		{l.get("paid_amount"), inv.PaidAmount},
		{l.get("balance_due"), inv.BalanceDue},
		{},
		{l.get("service"), l.get("quantity"), l.get("unit_price"), l.get("total"), l.get("date")},
	}
	for _, line := range inv.Lines {
		rows = append(rows, []interface{}{line.ServiceName, line.Quantity, line.UnitPrice, line.TotalPrice, line.Date.Format("2006-01-02")})
	}
	return writeRows(f, rows)
}

func writeRows(f *excelize.File, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		if err := setRow(f, i+1, row...); err != nil {
			return err
		}
	}
	return nil
}

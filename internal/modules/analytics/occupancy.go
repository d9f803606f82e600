package analytics

import (
	"context"
	"sort"
	"time"
)

// Occupancy reports occupied nights and occupancy rates per room, per room
// type and overall for [from, to]. The room catalogue is not range
// filtered: an idle room still contributes its available nights. A stay
// without a checkout uses now as the provisional checkout.
func (s *Service) Occupancy(ctx context.Context, from, to time.Time) (*OccupancyReport, error) {
	rooms, err := s.catalog.GetRooms(ctx)
	if err != nil {
		return nil, err
	}
	stays, err := s.stays.GetInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	now := s.now()
	totalDays := daysInclusive(from, to)

	report := &OccupancyReport{
		From:                from,
		To:                  to,
		TotalDays:           totalDays,
		RoomCount:           len(rooms),
		AvailableRoomNights: len(rooms) * totalDays,
	}

	nightsByRoom := make(map[int64]int)
	for _, stay := range stays {
		if stay.Booking == nil {
			continue
		}
		nightsByRoom[stay.Booking.RoomID] += stay.NightsUntil(now)
	}

	type typeAcc struct {
		row RoomTypeOccupancy
	}
	byType := make(map[int64]*typeAcc)

	report.Rooms = make([]RoomOccupancy, 0, len(rooms))
	for _, room := range rooms {
		occupied := nightsByRoom[room.ID]
		report.OccupiedNights += occupied

		typeName := ""
		if room.RoomType != nil {
			typeName = room.RoomType.Name
		}
		report.Rooms = append(report.Rooms, RoomOccupancy{
			RoomID:         room.ID,
			RoomNumber:     room.Number,
			RoomTypeName:   typeName,
			OccupiedNights: occupied,
			OccupancyRate:  safeDiv(float64(occupied), float64(totalDays)) * 100,
		})

		acc, ok := byType[room.RoomTypeID]
		if !ok {
			acc = &typeAcc{row: RoomTypeOccupancy{RoomTypeID: room.RoomTypeID, RoomTypeName: typeName}}
			byType[room.RoomTypeID] = acc
		}
		acc.row.RoomCount++
		acc.row.AvailableNights += totalDays
		acc.row.OccupiedNights += occupied
	}

	report.ByRoomType = make([]RoomTypeOccupancy, 0, len(byType))
	for _, acc := range byType {
		acc.row.OccupancyRate = safeDiv(float64(acc.row.OccupiedNights), float64(acc.row.AvailableNights)) * 100
		report.ByRoomType = append(report.ByRoomType, acc.row)
	}
	sort.Slice(report.ByRoomType, func(i, j int) bool {
		return report.ByRoomType[i].RoomTypeID < report.ByRoomType[j].RoomTypeID
	})

	report.AverageOccupancyRate = safeDiv(float64(report.OccupiedNights), float64(report.AvailableRoomNights)) * 100
	return report, nil
}

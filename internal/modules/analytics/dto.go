package analytics

import "time"

type RevenueReport struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`

	AccommodationRevenue float64 `json:"accommodation_revenue"`
	ServiceRevenue       float64 `json:"service_revenue"`
	TotalRevenue         float64 `json:"total_revenue"`
	PlannedRevenue       float64 `json:"planned_revenue"`
	TaxCollected         float64 `json:"tax_collected"`
	StaysCount           int     `json:"stays_count"`
	AverageStayValue     float64 `json:"average_stay_value"`

	ByRoomType []RoomTypeRevenue `json:"by_room_type"`
}

type RoomTypeRevenue struct {
	RoomTypeID           int64   `json:"room_type_id"`
	RoomTypeName         string  `json:"room_type_name"`
	StaysCount           int     `json:"stays_count"`
	AccommodationRevenue float64 `json:"accommodation_revenue"`
	ServiceRevenue       float64 `json:"service_revenue"`
	TotalRevenue         float64 `json:"total_revenue"`
	AverageRate          float64 `json:"average_rate"`
}

type OccupancyReport struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`

	TotalDays            int     `json:"total_days"`
	RoomCount            int     `json:"room_count"`
	AvailableRoomNights  int     `json:"available_room_nights"`
	OccupiedNights       int     `json:"occupied_nights"`
	AverageOccupancyRate float64 `json:"average_occupancy_rate"`

	Rooms      []RoomOccupancy     `json:"rooms"`
	ByRoomType []RoomTypeOccupancy `json:"by_room_type"`
}

type RoomOccupancy struct {
	RoomID         int64   `json:"room_id"`
	RoomNumber     string  `json:"room_number"`
	RoomTypeName   string  `json:"room_type_name"`
	OccupiedNights int     `json:"occupied_nights"`
	OccupancyRate  float64 `json:"occupancy_rate"`
}

type RoomTypeOccupancy struct {
	RoomTypeID      int64   `json:"room_type_id"`
	RoomTypeName    string  `json:"room_type_name"`
	RoomCount       int     `json:"room_count"`
	AvailableNights int     `json:"available_nights"`
	OccupiedNights  int     `json:"occupied_nights"`
	OccupancyRate   float64 `json:"occupancy_rate"`
}

type ServicesReport struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`

	TotalServiceRevenue  float64 `json:"total_service_revenue"`
	TotalServicesOrdered int     `json:"total_services_ordered"`
	AverageServiceValue  float64 `json:"average_service_value"`

	Services []ServicePopularity   `json:"services"`
	Daily    []DailyServiceRevenue `json:"daily"`
}

type ServicePopularity struct {
	ServiceID      int64   `json:"service_id"`
	ServiceName    string  `json:"service_name"`
	TimesOrdered   int     `json:"times_ordered"`
	TotalRevenue   float64 `json:"total_revenue"`
	PopularityRank int     `json:"popularity_rank"`
}

type DailyServiceRevenue struct {
	Date       time.Time `json:"date"`
	OrderCount int       `json:"order_count"`
	Revenue    float64   `json:"revenue"`
}

type GuestReport struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`

	TotalGuests         int     `json:"total_guests"`
	NewGuests           int     `json:"new_guests"`
	ReturningGuests     int     `json:"returning_guests"`
	AverageStayDuration float64 `json:"average_stay_duration"`

	NewSegment       GuestSegment       `json:"new_segment"`
	ReturningSegment GuestSegment       `json:"returning_segment"`
	TopGuests        []TopGuest         `json:"top_guests"`
	Demographics     []CitizenshipGroup `json:"demographics"`
}

type GuestSegment struct {
	Segment             string  `json:"segment"`
	GuestCount          int     `json:"guest_count"`
	TotalRevenue        float64 `json:"total_revenue"`
	AverageStayDuration float64 `json:"average_stay_duration"`
	AverageSpend        float64 `json:"average_spend"`
}

type TopGuest struct {
	GuestID    int64     `json:"guest_id"`
	GuestName  string    `json:"guest_name"`
	TotalSpent float64   `json:"total_spent"`
	TotalStays int       `json:"total_stays"`
	LastSeen   time.Time `json:"last_seen"`
}

type CitizenshipGroup struct {
	Citizenship string  `json:"citizenship"`
	GuestCount  int     `json:"guest_count"`
	Percentage  float64 `json:"percentage"`
}

package main

import (
	"context"
	"errors"
	"log"
	"time"

	"hotelback/internal/database"
	"hotelback/internal/domain"
	"hotelback/internal/repository"
)

// Seeds a demo dataset: two room types, three rooms, four guests, bookings
// with completed and open stays, and service sales including a cancelled
// one so the exclusion rule is visible in every report.
func main() {
	db, err := database.Connect("hotel.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM service_sales")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM stay_guests")
	db.Exec("DELETE FROM stays")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM room_types")
	db.Exec("DELETE FROM guests")

	ctx := context.Background()
	catalogRepo := repository.NewCatalogRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	stayRepo := repository.NewStayRepository(db)
	saleRepo := repository.NewServiceSaleRepository(db)

	log.Println("Creating room types and rooms...")
	standard := domain.RoomType{Name: "Standard", Description: "Стандартный номер", BaseRate: 15000, Capacity: 2}
	deluxe := domain.RoomType{Name: "Deluxe", Description: "Номер повышенной комфортности", BaseRate: 27000, Capacity: 3}
	must(catalogRepo.CreateRoomType(ctx, &standard))
	must(catalogRepo.CreateRoomType(ctx, &deluxe))

	rooms := []domain.Room{
		{Number: "101", Floor: 1, RoomTypeID: standard.ID, IsActive: true},
		{Number: "102", Floor: 1, RoomTypeID: standard.ID, IsActive: true},
		{Number: "201", Floor: 2, RoomTypeID: deluxe.ID, IsActive: true},
	}
	for i := range rooms {
		must(catalogRepo.CreateRoom(ctx, &rooms[i]))
	}

	log.Println("Creating guests...")
	guests := []domain.Guest{
		{FirstName: "Айдар", LastName: "Нурланов", Email: "aidar@example.kz", Citizenship: "Kazakhstan"},
		{FirstName: "Мария", LastName: "Ким", Email: "maria@example.kz", Citizenship: "Kazakhstan"},
		{FirstName: "John", LastName: "Smith", Email: "john@example.com", Citizenship: "United Kingdom"},
		{FirstName: "Злата", LastName: "Петрова", Email: "zlata@example.ru"},
	}
	for i := range guests {
		must(guestRepo.Create(ctx, &guests[i]))
	}

	log.Println("Creating bookings and stays...")
	day := func(d int) time.Time { return time.Date(2025, 8, d, 0, 0, 0, 0, time.UTC) }

	b1 := domain.Booking{GuestID: guests[0].ID, RoomID: rooms[0].ID, CheckInDate: day(3), CheckOutDate: day(7), TotalPrice: 60000, Status: domain.BookingCompleted}
	b2 := domain.Booking{GuestID: guests[2].ID, RoomID: rooms[2].ID, CheckInDate: day(10), CheckOutDate: day(13), TotalPrice: 81000, Status: domain.BookingConfirmed}
	must(bookingRepo.Create(ctx, &b1))
	must(bookingRepo.Create(ctx, &b2))

	checkout1 := day(7)
	s1 := domain.Stay{
		BookingID:         b1.ID,
		ActualCheckInDate: day(3), ActualCheckOutDate: &checkout1,
		TotalAmount: 51000, PaidAmount: 51000, TaxPercent: 20,
		PaymentStatus: domain.SalePaid,
		Guests: []domain.StayGuest{
			{GuestID: guests[0].ID, IsMainGuest: true},
			{GuestID: guests[1].ID},
		},
	}
	// Open stay: guest still resident, checkout unresolved.
	s2 := domain.Stay{
		BookingID:         b2.ID,
		ActualCheckInDate: day(10),
		TotalAmount:       81000, PaidAmount: 40000, TaxPercent: 20,
		PaymentStatus: domain.SaleUnpaid,
		Guests: []domain.StayGuest{
			{GuestID: guests[2].ID, IsMainGuest: true},
		},
	}
	if err := stayRepo.Create(ctx, &s1); err != nil {
		fatalStay(err)
	}
	if err := stayRepo.Create(ctx, &s2); err != nil {
		fatalStay(err)
	}

	log.Println("Creating services and sales...")
	breakfast := domain.Service{Name: "Breakfast", Price: 2500, TaxPercent: 12, IsActive: true}
	transfer := domain.Service{Name: "Airport transfer", Price: 8000, TaxPercent: 12, IsActive: true}
	laundry := domain.Service{Name: "Laundry", Price: 1500, TaxPercent: 12, IsActive: true}
	must(catalogRepo.CreateService(ctx, &breakfast))
	must(catalogRepo.CreateService(ctx, &transfer))
	must(catalogRepo.CreateService(ctx, &laundry))

	sales := []domain.ServiceSale{
		{ServiceID: breakfast.ID, GuestID: guests[0].ID, StayID: &s1.ID, Quantity: 4, UnitPrice: 2500, TotalPrice: 10000, TaxPercent: 12, SaleDate: day(4), PaymentStatus: domain.SalePaid},
		{ServiceID: transfer.ID, GuestID: guests[2].ID, StayID: &s2.ID, Quantity: 1, UnitPrice: 8000, TotalPrice: 8000, TaxPercent: 12, SaleDate: day(10), PaymentStatus: domain.SaleUnpaid},
		// Cancelled sale: must not show up in any report or invoice.
		{ServiceID: laundry.ID, GuestID: guests[0].ID, StayID: &s1.ID, Quantity: 2, UnitPrice: 1500, TotalPrice: 3000, TaxPercent: 12, SaleDate: day(5), PaymentStatus: domain.SaleCancelled},
	}
	for i := range sales {
		must(saleRepo.Create(ctx, &sales[i]))
	}

	log.Println("Seed complete.")
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func fatalStay(err error) {
	if errors.Is(err, repository.ErrDuplicateMainGuest) {
		log.Fatal("seed data marks more than one main guest on a stay")
	}
	log.Fatal(err)
}

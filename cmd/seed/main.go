package main

import (
	"context"
	"log"
	"os"

	"gorm.io/datatypes"

	"azurea/internal/database"
	"azurea/internal/domain"
	"azurea/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "azurea.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM areas")

	resources := repository.NewResourceRepository(db)
	ctx := context.Background()

	log.Println("Creating rooms...")
	rooms := []domain.Room{
		{
			Name:          "Standard Twin",
			RoomType:      "standard",
			Status:        domain.ResourceAvailable,
			PricePerNight: "₱1,500.00",
			Capacity:      2,
			Description:   "Street-side twin room on the second floor.",
			Amenities:     datatypes.JSON(`["wifi","aircon","tv"]`),
		},
		{
			Name:          "Deluxe Room",
			RoomType:      "deluxe",
			Status:        domain.ResourceAvailable,
			PricePerNight: "₱2,000.00",
			Capacity:      2,
			Description:   "Queen bed with a garden view.",
			Amenities:     datatypes.JSON(`["wifi","aircon","tv","minibar"]`),
		},
		{
			Name:          "Executive Suite",
			RoomType:      "suite",
			Status:        domain.ResourceAvailable,
			PricePerNight: "₱4,500.00",
			Capacity:      4,
			Description:   "Two-room suite with a kitchenette.",
			Amenities:     datatypes.JSON(`["wifi","aircon","tv","minibar","bathtub"]`),
		},
		{
			Name:          "Family Room",
			RoomType:      "family",
			Status:        domain.ResourceAvailable,
			PricePerNight: "₱3,200.00",
			Capacity:      6,
			Description:   "Sleeps six across three double beds.",
			Amenities:     datatypes.JSON(`["wifi","aircon","tv"]`),
		},
	}
	for i := range rooms {
		if err := resources.CreateRoom(ctx, &rooms[i]); err != nil {
			log.Fatal("seed room failed:", err)
		}
	}

	log.Println("Creating areas...")
	areas := []domain.Area{
		{
			Name:         "Garden Pavilion",
			Status:       domain.ResourceAvailable,
			PricePerHour: "₱350.50",
			Capacity:     80,
			Description:  "Open-air pavilion for receptions and parties.",
		},
		{
			Name:         "Function Hall",
			Status:       domain.ResourceAvailable,
			PricePerHour: "₱500.00",
			Capacity:     150,
			Description:  "Air-conditioned hall with a stage and sound system.",
		},
		{
			Name:         "Poolside Deck",
			Status:       domain.ResourceAvailable,
			PricePerHour: "₱280.00",
			Capacity:     40,
			Description:  "Evening rentals only; includes pool access.",
		},
	}
	for i := range areas {
		if err := resources.CreateArea(ctx, &areas[i]); err != nil {
			log.Fatal("seed area failed:", err)
		}
	}

	log.Printf("Done: %d rooms, %d areas", len(rooms), len(areas))
}

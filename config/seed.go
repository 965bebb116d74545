package config

import (
	"encoding/json"
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hostel-backend/models"
)

func amenities(items ...string) datatypes.JSON {
	raw, err := json.Marshal(items)
	if err != nil {
		log.Fatalf("Error marshalling amenities for seeding: %v", err)
	}
	return datatypes.JSON(raw)
}

// SeedRooms inserts the starter room catalog when the rooms table is empty.
func SeedRooms(db *gorm.DB) {
	var count int64
	db.Model(&models.Room{}).Count(&count)
	if count > 0 {
		log.Println("Rooms already seeded")
		return
	}

	rooms := []models.Room{
		{
			Name:        "Single Room",
			HostelName:  "Maraga Hostel",
			Description: "A comfortable single room with all basic amenities. Perfect for students who prefer privacy and a quiet study environment.",
			Price:       16000,
			Capacity:    1,
			RoomType:    "Single",
			Floor:       "2nd Floor",
			Available:   true,
			Amenities:   amenities("Wi-Fi", "Study Desk", "Wardrobe", "Attached Bathroom", "Air Conditioning"),
			Image:       "https://images.unsplash.com/photo-1555854877-bab0e564b8d5",
		},
		{
			Name:        "Standard Double Room",
			HostelName:  "Sunrise Hostel",
			Description: "A spacious room designed for two students with separate beds and study areas.",
			Price:       16000,
			Capacity:    2,
			RoomType:    "Double",
			Floor:       "1st Floor",
			Available:   true,
			Amenities:   amenities("Wi-Fi", "Study Desks", "Wardrobes", "Shared Bathroom", "Ceiling Fan"),
			Image:       "https://images.unsplash.com/photo-1595526114035-0d45ed16cfbf",
		},
		{
			Name:        "Premium Room",
			HostelName:  "Aggreves Hostel",
			Description: "Premium accommodation with enhanced amenities and comfort.",
			Price:       16000,
			Capacity:    1,
			RoomType:    "Premium",
			Floor:       "3rd Floor",
			Available:   true,
			Amenities:   amenities("Wi-Fi", "Private Bathroom", "Study Area", "Air Conditioning"),
			Image:       "https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af",
		},
		{
			Name:        "Standard Room",
			HostelName:  "Tana Hostel",
			Description: "Comfortable standard room with essential amenities.",
			Price:       16000,
			Capacity:    2,
			RoomType:    "Standard",
			Floor:       "2nd Floor",
			Available:   true,
			Amenities:   amenities("Wi-Fi", "Shared Bathroom", "Study Desk"),
			Image:       "https://images.unsplash.com/photo-1513694203232-719a280e022f",
		},
		{
			Name:        "Deluxe Room",
			HostelName:  "Mboya Hostel",
			Description: "Spacious deluxe room with premium furnishings.",
			Price:       16000,
			Capacity:    1,
			RoomType:    "Deluxe",
			Floor:       "4th Floor",
			Available:   true,
			Amenities:   amenities("Wi-Fi", "Private Bathroom", "Air Conditioning", "Mini Fridge"),
			Image:       "https://images.unsplash.com/photo-1598928506311-c55ded91a20c",
		},
		{
			Name:        "Economy Room",
			HostelName:  "Maraga Hostel",
			Description: "Budget-friendly room for students who want the essentials.",
			Price:       16000,
			Capacity:    3,
			RoomType:    "Economy",
			Floor:       "1st Floor",
			Available:   true,
			Amenities:   amenities("Wi-Fi", "Shared Bathroom", "Study Desk"),
			Image:       "https://images.unsplash.com/photo-1505693416388-ac5ce068fe85",
		},
	}

	if err := db.Create(&rooms).Error; err != nil {
		log.Printf("warning: failed to seed rooms: %v", err)
		return
	}
	log.Println("Rooms seeded")
}

package main

import (
	"fmt"
	"log"
	"time"

	"github.com/DeaforK/electronics-store-sub002/config"
	"github.com/DeaforK/electronics-store-sub002/models"
	"github.com/DeaforK/electronics-store-sub002/rabbitmq"
	"github.com/DeaforK/electronics-store-sub002/utils"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds a small electronics catalog for local development.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("ELECTRONICS STORE - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	if err := config.DB.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Variation{},
		&models.Promotion{},
		&models.Favorite{},
	); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	log.Println("✓ Schema migrated")

	computers := seedCategory("Computers", "Desktops, laptops and accessories", nil)
	laptops := seedCategory("Laptops", "Portable computers", &computers.ID)
	audio := seedCategory("Audio", "Headphones and speakers", nil)
	log.Println("✓ Categories seeded")

	sale := models.Promotion{
		Name:          "Back to School",
		DiscountType:  models.DiscountTypePercent,
		DiscountValue: 10,
		Status:        "Active",
		StartsAt:      time.Now().Add(-24 * time.Hour),
		EndsAt:        time.Now().Add(30 * 24 * time.Hour),
	}
	if err := config.DB.Create(&sale).Error; err != nil {
		log.Fatalf("Failed to seed promotion: %v", err)
	}
	log.Println("✓ Promotion seeded")

	ultrabook := seedProduct("Aero Ultrabook 14", laptops.ID, 4.6, true, models.UUIDList{sale.ID})
	seedVariation(ultrabook, "AERO14-16-256", 999.00, 15, 12, models.AttributeMap{"RAM": "16GB", "Storage": "256GB"})
	seedVariation(ultrabook, "AERO14-32-512", 1299.00, 0, 5, models.AttributeMap{"RAM": "32GB", "Storage": "512GB"})

	headphones := seedProduct("Solace ANC Headphones", audio.ID, 4.2, false, nil)
	seedVariation(headphones, "SOL-ANC-BLK", 249.99, 0, 40, models.AttributeMap{"Color": "Black"})
	seedVariation(headphones, "SOL-ANC-SLV", 249.99, 5, 18, models.AttributeMap{"Color": "Silver"})
	log.Println("✓ Products and variations seeded")

	publishInvalidation(computers.ID, laptops.ID, audio.ID)

	if token, err := utils.GenerateJWT(uuid.New(), "demo@electronics.store"); err == nil {
		fmt.Println("Demo customer token:", token)
	} else {
		log.Printf("Skipping demo token: %v", err)
	}

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("Done.")
}

// publishInvalidation tells running storefront instances to drop their
// category caches so the fresh seed data shows up without a restart.
func publishInvalidation(categoryIDs ...uuid.UUID) {
	broker, err := rabbitmq.NewRabbitMQ(config.LoadBrokerConfig())
	if err != nil {
		log.Printf("RabbitMQ unavailable, skipping invalidation events: %v", err)
		return
	}
	defer broker.Close()

	if err := broker.Setup(); err != nil {
		log.Printf("RabbitMQ setup failed, skipping invalidation events: %v", err)
		return
	}

	for _, id := range categoryIDs {
		event := models.CatalogEvent{
			EventID:   uuid.NewString(),
			EventType: models.EventCategoryChanged,
			Timestamp: time.Now(),
			EntityID:  id,
		}
		body, err := event.ToJSON()
		if err != nil {
			log.Printf("Failed to encode invalidation event for %s: %v", id, err)
			continue
		}
		if err := broker.PublishEvent(body); err != nil {
			log.Printf("Failed to publish invalidation event for %s: %v", id, err)
		}
	}
	log.Println("✓ Invalidation events published")
}

func seedCategory(name, description string, parentID *uuid.UUID) *models.Category {
	category := models.Category{
		Name:        name,
		Description: description,
		Status:      "Active",
		ParentID:    parentID,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		log.Fatalf("Failed to seed category %q: %v", name, err)
	}
	return &category
}

func seedProduct(name string, categoryID uuid.UUID, rating float64, onSale bool, promotions models.UUIDList) *models.Product {
	product := models.Product{
		Name:                   name,
		Status:                 "Active",
		CategoryID:             categoryID,
		OnSale:                 onSale,
		ApplicablePromotionIDs: promotions,
		Rating:                 rating,
		RatingCount:            25,
		Images:                 datatypes.NewJSONSlice([]string{"https://cdn.example.com/" + uuid.NewString() + ".jpg"}),
	}
	if err := config.DB.Create(&product).Error; err != nil {
		log.Fatalf("Failed to seed product %q: %v", name, err)
	}
	return &product
}

func seedVariation(product *models.Product, sku string, price, discount float64, quantity int, attrs models.AttributeMap) {
	variation := models.Variation{
		ProductID:  product.ID,
		SKU:        sku,
		Price:      price,
		Discount:   discount,
		Quantity:   quantity,
		Attributes: attrs,
		Status:     "Active",
	}
	if err := config.DB.Create(&variation).Error; err != nil {
		log.Fatalf("Failed to seed variation %q: %v", sku, err)
	}
}

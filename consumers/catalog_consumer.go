package consumers

import (
	"encoding/json"
	"log"

	"github.com/DeaforK/electronics-store-sub002/cache"
	"github.com/DeaforK/electronics-store-sub002/config"
	"github.com/DeaforK/electronics-store-sub002/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

// StartCatalogConsumer subscribes to the catalog-change feed and invalidates
// the storefront caches. The storefront never mutates catalog data itself;
// this is its only write-adjacent path.
func StartCatalogConsumer(ch *amqp.Channel, cfg config.BrokerConfig, categories *cache.CachedCategoryStore) {
	msgs, err := ch.Consume(
		cfg.CatalogQueue,
		"storefront", // consumer tag
		false,        // auto-ack
		false,        // exclusive
		false,        // no-local
		false,        // no-wait
		nil,
	)
	if err != nil {
		log.Printf("Failed to register catalog consumer: %v", err)
		return
	}

	go func() {
		for msg := range msgs {
			processCatalogMessage(msg, categories)
			msg.Ack(false)
		}
	}()
}

func processCatalogMessage(msg amqp.Delivery, categories *cache.CachedCategoryStore) {
	var event models.CatalogEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		log.Printf("Failed to unmarshal catalog event: %v", err)
		return
	}

	switch event.EventType {
	case models.EventCategoryChanged:
		log.Printf("Category %s changed, invalidating category cache", event.EntityID)
		categories.Invalidate()
	case models.EventProductChanged, models.EventVariationChanged, models.EventPromotionChanged:
		// product/variation/promotion reads are not cached in-process; nothing
		// to do beyond logging until a result cache exists
		log.Printf("Catalog entity %s changed (%s)", event.EntityID, event.EventType)
	default:
		log.Printf("Unknown catalog event type: %s", event.EventType)
	}
}

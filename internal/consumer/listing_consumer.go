package consumer

import (
	"encoding/json"
	"log"

	"github.com/kikao/booking-service/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListingConsumer struct {
	db *gorm.DB
}

func NewListingConsumer(db *gorm.DB) *ListingConsumer {
	return &ListingConsumer{db: db}
}

// Start listens for messages and upserts listings into the local booking DB.
func (lc *ListingConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			lc.handleMessage(msg)
		}
		log.Println("[ListingConsumer] channel closed, stopping consumer")
	}()
}

func (lc *ListingConsumer) handleMessage(msg amqp.Delivery) {
	var listing models.Listing
	if err := json.Unmarshal(msg.Body, &listing); err != nil {
		log.Printf("[ListingConsumer] failed to unmarshal: %v", err)
		msg.Nack(false, false)
		return
	}

	// Upsert: insert or update on conflict (same ID from Listing Service)
	result := lc.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "location", "county", "status", "user_id", "updated_at"}),
	}).Create(&listing)

	if result.Error != nil {
		log.Printf("[ListingConsumer] failed to upsert listing %s: %v", listing.ID, result.Error)
		msg.Nack(false, true) // requeue
		return
	}

	log.Printf("[ListingConsumer] synced listing %s: %s", listing.ID, listing.Name)
	msg.Ack(false)
}

package events

import (
	"encoding/json"
	"time"

	"github.com/abgdnv/storemanager/pkg/messaging"
)

// SaleCreatedEvent is emitted after a sale and its line items have been stored.
type SaleCreatedEvent struct {
	SaleID    int64     `json:"sale_id"`
	ItemCount int       `json:"item_count"`
	CreatedAt time.Time `json:"created_at"`
}

func (s SaleCreatedEvent) Subject() string {
	return messaging.SalesCreatedSubject
}

func (s SaleCreatedEvent) Payload() ([]byte, error) {
	return json.Marshal(s)
}

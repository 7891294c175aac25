package services

import (
	"encoding/json"
	"time"

	"productos/internal/dto"
)

// Routing keys of the events published after successful writes.
const (
	EventProductCreated = "producto.creado"
	EventProductUpdated = "producto.actualizado"
	EventStockUpdated   = "producto.stock_actualizado"
	EventProductDeleted = "producto.eliminado"
)

// EventPublisher delivers a serialized event under a routing key.
// *rabbitmq.Client satisfies it.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// ProductEvent is the JSON body of a published event. Product is absent on deletes.
type ProductEvent struct {
	Type       string               `json:"tipo"`
	ProductID  uint                 `json:"producto_id"`
	Product    *dto.ProductResponse `json:"producto,omitempty"`
	OccurredAt time.Time            `json:"fecha"`
}

// publish never fails the caller: the write already happened.
func (s *ProductService) publish(eventType string, id uint, product *dto.ProductResponse) {
	if s.publisher == nil {
		return
	}

	body, err := json.Marshal(ProductEvent{
		Type:       eventType,
		ProductID:  id,
		Product:    product,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		s.log.Warn().Err(err).Str("event", eventType).Uint("id", id).Msg("failed to marshal product event")
		return
	}

	if err := s.publisher.Publish(eventType, body); err != nil {
		s.log.Warn().Err(err).Str("event", eventType).Uint("id", id).Msg("failed to publish product event")
	}
}

package events

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shareit-lab/shareit-service/server/internal/model"
)

// Publisher emits booking lifecycle events. Publishing is best-effort:
// a failed publish is logged and never fails the calling operation.
type Publisher interface {
	BookingStatusChanged(booking model.Booking)
}

type BookingEvent struct {
	EventID   string              `json:"eventId"`
	BookingID int64               `json:"bookingId"`
	ItemID    int64               `json:"itemId"`
	BookerID  int64               `json:"bookerId"`
	Status    model.BookingStatus `json:"status"`
	At        time.Time           `json:"at"`
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	log      *zap.Logger
}

func NewPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) Publisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		log:      log.Named("events"),
	}
}

func (p *kafkaPublisher) BookingStatusChanged(booking model.Booking) {
	event := BookingEvent{
		EventID:   uuid.NewString(),
		BookingID: booking.ID,
		ItemID:    booking.ItemID,
		BookerID:  booking.BookerID,
		Status:    booking.Status,
		At:        time.Now().UTC(),
	}
	value, err := json.Marshal(event)
	if err != nil {
		p.log.Error("marshal booking event", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.EventID),
		Value: sarama.ByteEncoder(value),
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		p.log.Error("publish booking event",
			zap.Int64("bookingId", booking.ID),
			zap.Error(err))
	}
}

type nopPublisher struct{}

func Nop() Publisher { return nopPublisher{} }

func (nopPublisher) BookingStatusChanged(model.Booking) {}

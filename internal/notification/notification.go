package notification

//go:generate go run go.uber.org/mock/mockgen -source=./notification.go -destination=./mocks/notification_mock.go -package=mocks

import (
	"context"
	"time"

	"estetica/config"
	"estetica/infras/kafka"
	"estetica/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Kind string

const (
	KindBookingConfirmed Kind = "BOOKING_CONFIRMED"
	KindRequestReceived  Kind = "REQUEST_RECEIVED"
	KindRequestPending   Kind = "REQUEST_PENDING"
	KindRequestApproved  Kind = "REQUEST_APPROVED"
	KindCounterProposal  Kind = "COUNTER_PROPOSAL"
	KindCancelled        Kind = "CANCELLED"
	KindRescheduled      Kind = "RESCHEDULED"
	KindReminder         Kind = "REMINDER"
)

// Event is the payload published for every appointment state change a client
// or staff member should hear about.
type Event struct {
	Kind          Kind      `json:"kind"`
	AppointmentID string    `json:"appointment_id"`
	ClientID      string    `json:"client_id"`
	Esteticista   string    `json:"esteticista"`
	StartTime     time.Time `json:"start_time"`
	Message       string    `json:"message,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Dispatcher interface {
	Dispatch(event Event)
	Close()
}

type dispatcherImpl struct {
	cfg    *config.Config
	kafka  kafka.Client
	events chan Event
	done   chan struct{}
}

// NewDispatcher starts a worker that drains the event buffer into Kafka.
// Dispatch never blocks the caller: when the buffer is full the event is
// dropped with a warning, and delivery failures are logged only. A lost
// notification never fails the state change that produced it.
func NewDispatcher(cfg *config.Config, kafkaClient kafka.Client) Dispatcher {
	d := &dispatcherImpl{
		cfg:    cfg,
		kafka:  kafkaClient,
		events: make(chan Event, cfg.Notification.BufferSize),
		done:   make(chan struct{}),
	}

	go d.worker()

	log.Info().Str("topic", cfg.Notification.Topic).Msg("notification dispatcher started")

	return d
}

func (d *dispatcherImpl) Dispatch(event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = timezone.Now()
	}

	select {
	case d.events <- event:
	default:
		log.Warn().
			Str("kind", string(event.Kind)).
			Str("appointmentID", event.AppointmentID).
			Msg("notification buffer full, event dropped")
	}
}

func (d *dispatcherImpl) Close() {
	close(d.events)
	<-d.done
}

func (d *dispatcherImpl) worker() {
	defer close(d.done)

	for event := range d.events {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

		err := d.kafka.SendMessages(ctx, d.cfg.Notification.Topic, kafka.Message{
			Key:   event.AppointmentID,
			Value: event,
		})

		cancel()

		if err != nil {
			log.Error().Err(err).
				Str("kind", string(event.Kind)).
				Str("appointmentID", event.AppointmentID).
				Msg("failed to publish notification event")
		}
	}
}

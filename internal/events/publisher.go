package events

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/velora/storefront/internal/domain"
)

// Publisher writes order events to Kafka asynchronously. Messages pass
// through a buffered inbox so settlement never blocks on the broker; the
// loop drains the inbox on shutdown. Publishing after Close drops the
// event instead of panicking, so a settlement racing shutdown is safe.
type Publisher struct {
	w        *kafka.Writer
	inbox    chan kafka.Message
	stopCh   chan struct{}
	closedCh chan struct{}
	stopOnce sync.Once
	producer string
}

func NewPublisher(brokers []string, topic, producer string, buf int) *Publisher {
	return &Publisher{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        true,
		},
		inbox:    make(chan kafka.Message, buf),
		stopCh:   make(chan struct{}),
		closedCh: make(chan struct{}),
		producer: producer,
	}
}

func (p *Publisher) Start(ctx context.Context) {
	go func() {
		defer func() {
			_ = p.w.Close()
			close(p.closedCh)
		}()
		for {
			select {
			case <-ctx.Done():
				p.stop()
				p.drain()
				return
			case <-p.stopCh:
				p.drain()
				return
			case m := <-p.inbox:
				p.write(m)
			}
		}
	}()
}

// PublishOrderSettled enqueues an OrderSettled envelope keyed by order id.
// Events arriving after shutdown began are dropped and logged.
func (p *Publisher) PublishOrderSettled(order domain.Order) {
	ev := Envelope{
		EventID:       uuid.NewString(),
		EventType:     EventOrderSettled,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      p.producer,
		CorrelationID: order.ID,
	}
	ev.Payload = MustMarshal(NewOrderSettledPayload(order))

	msg := kafka.Message{
		Key:   []byte(order.ID),
		Value: MustMarshal(ev),
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "x-event-type", Value: []byte(EventOrderSettled)},
			{Key: "x-event-version", Value: []byte("1")},
		},
	}

	select {
	case <-p.stopCh:
		log.Printf("events: publisher stopped, dropping %s for order %s", EventOrderSettled, order.ID)
	case p.inbox <- msg:
	}
}

// Close signals the loop to flush remaining messages and exit.
func (p *Publisher) Close() { p.stop() }

// WaitClosed blocks until the loop has drained and exited.
func (p *Publisher) WaitClosed() { <-p.closedCh }

func (p *Publisher) stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
}

// drain flushes whatever is still buffered in the inbox.
func (p *Publisher) drain() {
	for {
		select {
		case m := <-p.inbox:
			p.write(m)
		default:
			return
		}
	}
}

func (p *Publisher) write(m kafka.Message) {
	if err := p.w.WriteMessages(context.Background(), m); err != nil {
		log.Printf("events: write failed: %v", err)
	}
}

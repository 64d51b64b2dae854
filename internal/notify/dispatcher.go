package notify

import (
	"context"
	"log"
	"time"
)

// Confirmation is the payload sent to a customer after a booking.
type Confirmation struct {
	Phone         string
	Name          string
	FormattedTime string
}

// Sender delivers a confirmation through one channel (SMS, e-mail).
type Sender interface {
	SendConfirmation(ctx context.Context, msg Confirmation) error
}

// Dispatcher fans confirmations out to every configured sender from a
// background worker. Delivery is fire-and-forget: a full queue or a
// provider failure never affects the booking that triggered it.
type Dispatcher struct {
	senders []Sender
	queue   chan Confirmation
}

func NewDispatcher(senders ...Sender) *Dispatcher {
	d := &Dispatcher{
		senders: senders,
		queue:   make(chan Confirmation, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		for _, sender := range d.senders {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := sender.SendConfirmation(ctx, msg); err != nil {
				log.Println("notification error:", err)
			}
			cancel()
		}
	}
}

func (d *Dispatcher) Dispatch(msg Confirmation) {
	select {
	case d.queue <- msg:
		// enviado
	default:
		// fila cheia → descartamos a notificação (nunca quebrar a reserva)
		log.Println("notification queue full, dropping message")
	}
}

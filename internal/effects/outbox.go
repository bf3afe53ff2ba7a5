package effects

import (
	"context"
	"time"

	"auction-marketplace/utils"
)

const drainTimeout = 5 * time.Second

// Outbox queues effects in memory and delivers them from Run. When the queue
// is full the effect is delivered inline instead of being dropped.
type Outbox struct {
	queue     chan Effect
	deliverer Deliverer
}

func NewOutbox(deliverer Deliverer, buffer int) *Outbox {
	if buffer < 0 {
		buffer = 0
	}
	return &Outbox{
		queue:     make(chan Effect, buffer),
		deliverer: deliverer,
	}
}

func (o *Outbox) Emit(ctx context.Context, effects ...Effect) {
	for _, e := range effects {
		select {
		case o.queue <- e:
		default:
			utils.Warn("outbox full, delivering inline", map[string]any{"kind": e.Kind, "recipient": e.RecipientID})
			deliverLogged(context.WithoutCancel(ctx), o.deliverer, e)
		}
	}
}

// Run delivers queued effects until ctx is done, then drains what is left.
func (o *Outbox) Run(ctx context.Context) error {
	for {
		select {
		case e := <-o.queue:
			deliverLogged(ctx, o.deliverer, e)
		case <-ctx.Done():
			o.drain()
			return nil
		}
	}
}

func (o *Outbox) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	for {
		select {
		case e := <-o.queue:
			deliverLogged(ctx, o.deliverer, e)
		default:
			return
		}
	}
}

// Pending reports the number of queued effects.
func (o *Outbox) Pending() int {
	return len(o.queue)
}

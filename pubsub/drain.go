package pubsub

import (
	"context"

	"duochat/contract"
)

// Drain pumps a subscription into a sink until the subscription closes or
// the context ends. It is the standard consumer loop for projections and
// indexers; run it in its own goroutine per subscription.
func Drain(ctx context.Context, sub *Subscription, sink contract.EventSink) {
	defer sub.Cancel()
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-sub.Events():
			if !ok {
				return
			}
			sink.Consume(e)
		}
	}
}

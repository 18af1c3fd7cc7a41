// internal/receiver/async.go
package receiver

import (
	"log"
	"sync"
)

// DefaultQueueSize is the AsyncSink buffer used by the CLI.
const DefaultQueueSize = 64

// AsyncSink hands readings to a wrapped Sink from a single goroutine.
// Publish never blocks: when the queue is full the reading is logged
// and dropped. The Modbus response must not wait for the sink.
type AsyncSink struct {
	next  Sink
	queue chan Reading

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

var _ Sink = (*AsyncSink)(nil)

// NewAsyncSink starts the drain goroutine. size < 1 is treated as 1.
func NewAsyncSink(next Sink, size int) *AsyncSink {
	if size < 1 {
		size = 1
	}
	s := &AsyncSink{
		next:  next,
		queue: make(chan Reading, size),
		done:  make(chan struct{}),
	}
	go s.drain()
	return s
}

// Publish queues r. It returns nil even when r is dropped.
func (s *AsyncSink) Publish(r Reading) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		log.Printf("receiver: publish dropped (client=%s): sink closed", r.Client)
		return nil
	}

	select {
	case s.queue <- r:
	default:
		log.Printf("receiver: publish dropped (client=%s): queue full (%d)", r.Client, cap(s.queue))
	}
	return nil
}

// Close stops accepting readings and waits for queued ones to be delivered.
func (s *AsyncSink) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()

	<-s.done
}

func (s *AsyncSink) drain() {
	defer close(s.done)

	for r := range s.queue {
		if err := s.next.Publish(r); err != nil {
			log.Printf("receiver: publish failed (client=%s): %v", r.Client, err)
		}
	}
}

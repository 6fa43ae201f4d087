package network

import (
	"sync"

	"github.com/kevrgithub/tibianer-old/pkg/api"
	"github.com/kevrgithub/tibianer-old/pkg/logger"

	"github.com/sirupsen/logrus"
)

// SubscriberBuffer is how many frames a slow subscriber may fall behind
// before frames are dropped for it.
const SubscriberBuffer = 16

// Broadcaster fans every published frame out to its subscribers: network
// clients and the local renderer alike.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[uint64]chan api.FrameResponse
	nextID      uint64
	last        *api.FrameResponse
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[uint64]chan api.FrameResponse),
	}
}

// Subscribe registers a new subscriber. The latest frame, if any, is
// already waiting in the returned channel so new clients draw at once.
func (b *Broadcaster) Subscribe() (uint64, <-chan api.FrameResponse) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	ch := make(chan api.FrameResponse, SubscriberBuffer)
	if b.last != nil {
		ch <- *b.last
	}
	b.subscribers[b.nextID] = ch
	return b.nextID, ch
}

// Unsubscribe closes and forgets the subscriber. Unknown ids are ignored.
func (b *Broadcaster) Unsubscribe(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
}

// Publish implements engine.Publisher. It never blocks: a subscriber
// whose buffer is full misses the frame.
func (b *Broadcaster) Publish(frame api.FrameResponse) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.last = &frame
	for id, ch := range b.subscribers {
		select {
		case ch <- frame:
		default:
			logger.Log.WithFields(logrus.Fields{
				"component":  "broadcaster",
				"subscriber": id,
				"tick":       frame.Tick,
			}).Debug("Subscriber behind, frame dropped.")
		}
	}
}

// Last returns the most recent frame.
func (b *Broadcaster) Last() (api.FrameResponse, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.last == nil {
		return api.FrameResponse{}, false
	}
	return *b.last, true
}

// SubscriberCount is the number of live subscribers.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

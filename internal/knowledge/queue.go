package knowledge

import "sync"

// Queue is the unbounded FIFO of topic names awaiting enrichment.
// Push never blocks and allows duplicates; filtering happens at pop
// time against current state, since the lexicon may have changed while
// a topic sat in the queue.
type Queue struct {
	mu     sync.Mutex
	topics []string
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends a topic. Duplicates are allowed.
func (q *Queue) Push(topic string) {
	if topic == "" {
		return
	}
	q.mu.Lock()
	q.topics = append(q.topics, topic)
	q.mu.Unlock()
}

// Pop removes and returns the oldest topic. ok is false when empty.
func (q *Queue) Pop() (topic string, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.topics) == 0 {
		return "", false
	}
	topic = q.topics[0]
	q.topics = q.topics[1:]
	return topic, true
}

// Len returns the number of queued topics.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.topics)
}

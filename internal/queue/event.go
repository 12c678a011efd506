// Package queue defines message payloads exchanged over the message broker.
package queue

// CounterQueueName is the durable queue counter events are published to.
const CounterQueueName = "counter.incremented"

// CounterIncrementedEvent is published after the counter was incremented in
// the cache. Value is the counter value returned by INCR.
type CounterIncrementedEvent struct {
	Key           string `json:"key"`
	Value         int64  `json:"value"`
	IncrementedAt string `json:"incremented_at"`
}

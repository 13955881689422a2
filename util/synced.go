package util

import "sync/atomic"

// SafeCounter is safe to use concurrently.
type SafeCounter struct {
	value int64
}

// NewSafeCounter creates a new SafeCounter.
func NewSafeCounter() *SafeCounter {
	return &SafeCounter{}
}

// Increment increments the counter's value and returns the new value.
func (sc *SafeCounter) Increment() int64 {
	return atomic.AddInt64(&sc.value, 1)
}

// Add adds a delta to the counter's value and returns the new value.
func (sc *SafeCounter) Add(delta int64) int64 {
	return atomic.AddInt64(&sc.value, delta)
}

// Value returns the current value of the counter.
func (sc *SafeCounter) Value() int64 {
	return atomic.LoadInt64(&sc.value)
}

// SafeFlag is safe to use concurrently.
type SafeFlag struct {
	value int32
}

// NewSafeFlag creates a new SafeFlag.
func NewSafeFlag() *SafeFlag {
	return &SafeFlag{}
}

// SetOnce sets the flag and reports whether this call was the one that set it.
func (sf *SafeFlag) SetOnce() bool {
	return atomic.CompareAndSwapInt32(&sf.value, 0, 1)
}

package codex

import "sync"

var (
	registry   = make(map[string]*Processor)
	registryMu sync.RWMutex
)

// Use returns a cached processor or builds a new one.
// The processor is cached by codec content type; opts only apply when the
// processor is built.
func Use(codec Codec, opts ...ProcessorOption) (*Processor, error) {
	key := codec.ContentType()

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached, nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[key]; ok {
		return cached, nil
	}

	processor, err := NewProcessor(codec, opts...)
	if err != nil {
		return nil, err
	}

	registry[key] = processor
	return processor, nil
}

// Reset clears the processor registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]*Processor)
}

package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtomicFloat32StoreLoad(t *testing.T) {
	a := NewAtomicFloat32(50)
	assert.Equal(t, float32(50), a.Load())

	a.Store(12.5)
	assert.Equal(t, float32(12.5), a.Load())

	a.Store(-3)
	assert.Equal(t, float32(-3), a.Load())
}

func TestAtomicFloat32ZeroValue(t *testing.T) {
	var a AtomicFloat32
	assert.Equal(t, float32(0), a.Load())
}

func TestAtomicFloat32ConcurrentReaderSeesValidValues(t *testing.T) {
	a := NewAtomicFloat32(1)
	values := map[float32]bool{1: true, 2: true, 3: true}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			a.Store(float32(i%3) + 1)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			// Every read returns some value that was actually stored,
			// never a torn mix of two writes.
			assert.True(t, values[a.Load()])
		}
	}()
	wg.Wait()
}

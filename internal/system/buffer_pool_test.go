package system

import "testing"

func TestBufferPoolReturnsZeroedBuffers(t *testing.T) {
	p := NewBufferPool()

	buf := p.Get(16)
	if len(buf) != 16 {
		t.Fatalf("Expected length 16, got %d", len(buf))
	}
	for i := range buf {
		buf[i] = 0xFF
	}
	p.Put(buf)

	again := p.Get(16)
	for i, v := range again {
		if v != 0 {
			t.Fatalf("Byte %d not cleared: %d", i, v)
		}
	}
}

func TestBufferPoolSizes(t *testing.T) {
	p := NewBufferPool()

	if buf := p.Get(0); buf != nil {
		t.Errorf("Expected nil for zero length, got %v", buf)
	}

	a := p.Get(8)
	b := p.Get(32)
	if len(a) != 8 || len(b) != 32 {
		t.Errorf("Unexpected lengths: %d, %d", len(a), len(b))
	}

	// Unknown sizes are dropped silently
	p.Put(make([]uint8, 7))
	p.Put(nil)
}

func TestHostStats(t *testing.T) {
	h := HostStats()
	if h.LogicalCPUs <= 0 {
		t.Errorf("Expected at least one logical CPU, got %d", h.LogicalCPUs)
	}
	t.Logf("Host: %s", h)
}

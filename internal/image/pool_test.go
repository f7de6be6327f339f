package image

import (
	"sync"
	"testing"
)

func TestPool_GetPut(t *testing.T) {
	pool := NewPool(4)

	buf := pool.Get(16, 8, FormatRGBA8)
	if buf == nil {
		t.Fatal("Get returned nil")
	}
	if buf.Width() != 16 || buf.Height() != 8 || buf.Format() != FormatRGBA8 {
		t.Fatalf("Get shape = %dx%d %v, want 16x8 RGBA8", buf.Width(), buf.Height(), buf.Format())
	}

	buf.Fill(Color{R: 9, G: 9, B: 9, A: 9})
	pool.Put(buf)

	again := pool.Get(16, 8, FormatRGBA8)
	if again != buf {
		t.Error("Get did not reuse the pooled buffer")
	}
	if c := again.At(3, 3); c != Transparent {
		t.Errorf("reused buffer not cleared: %+v", c)
	}
}

func TestPool_SeparateBuckets(t *testing.T) {
	pool := NewPool(4)

	a := pool.Get(10, 10, FormatRGBA8)
	pool.Put(a)

	if b := pool.Get(10, 10, FormatGray8); b == a {
		t.Error("buffer reused across formats")
	}
	if c := pool.Get(20, 10, FormatRGBA8); c == a {
		t.Error("buffer reused across sizes")
	}
}

func TestPool_MaxSize(t *testing.T) {
	pool := NewPool(2)
	for range 5 {
		pool.Put(MustBuffer(4, 4, FormatGray8))
	}

	pool.mu.Lock()
	n := len(pool.buckets[poolKey{width: 4, height: 4, format: FormatGray8}])
	pool.mu.Unlock()
	if n != 2 {
		t.Errorf("bucket size = %d, want 2", n)
	}
}

func TestPool_PutNil(t *testing.T) {
	pool := NewPool(2)
	pool.Put(nil)

	pool.mu.Lock()
	defer pool.mu.Unlock()
	if len(pool.buckets) != 0 {
		t.Errorf("pool has %d buckets after Put(nil), want 0", len(pool.buckets))
	}
}

func TestPool_GetInvalid(t *testing.T) {
	pool := NewPool(2)
	if buf := pool.Get(0, 10, FormatRGBA8); buf != nil {
		t.Error("Get(0, 10) should return nil")
	}
	if buf := pool.Get(10, 10, Format(200)); buf != nil {
		t.Error("Get with invalid format should return nil")
	}
}

func TestPool_Concurrent(t *testing.T) {
	pool := NewPool(10)

	var wg sync.WaitGroup
	for id := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 50 {
				buf := pool.Get(32, 32, FormatRGBA8)
				c := Color{R: byte(id), G: byte(j), A: 255}
				if err := buf.Set(0, 0, c); err != nil {
					t.Errorf("Set: %v", err)
					return
				}
				if got := buf.At(0, 0); got != c {
					t.Errorf("goroutine %d: At = %+v, want %+v", id, got, c)
				}
				pool.Put(buf)
			}
		}()
	}
	wg.Wait()

	pool.mu.Lock()
	defer pool.mu.Unlock()
	for key, bucket := range pool.buckets {
		if len(bucket) > pool.maxSize {
			t.Errorf("bucket %+v has %d buffers, exceeds %d", key, len(bucket), pool.maxSize)
		}
	}
}

func TestScratchPool(t *testing.T) {
	buf := GetScratch(8, 8, FormatRGB8)
	if buf == nil {
		t.Fatal("GetScratch returned nil")
	}
	PutScratch(buf)
}

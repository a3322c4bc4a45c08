package bytering

import (
	"sync"
	"testing"
	"time"
)

func TestWriteReadOrder(t *testing.T) {
	r := New(8)
	if n := r.Write([]byte("R3")); n != 2 {
		t.Fatalf("Write = %d, want 2", n)
	}
	for _, want := range []byte("R3") {
		b, ok := r.ReadByte()
		if !ok || b != want {
			t.Fatalf("ReadByte = %q,%v want %q", b, ok, want)
		}
	}
	if _, ok := r.ReadByte(); ok {
		t.Fatal("ring should be empty")
	}
}

func TestOverflowStoresWhatFits(t *testing.T) {
	r := New(4)
	if n := r.Write([]byte("abcdef")); n != 4 {
		t.Fatalf("Write = %d, want 4", n)
	}
	if r.Len() != 4 {
		t.Fatalf("Len = %d", r.Len())
	}
	// Wraparound after partial drain.
	r.ReadByte()
	r.ReadByte()
	r.Write([]byte("gh"))
	got := ""
	for {
		b, ok := r.ReadByte()
		if !ok {
			break
		}
		got += string(b)
	}
	if got != "cdgh" {
		t.Fatalf("got %q, want cdgh", got)
	}
}

func TestReadableEdge(t *testing.T) {
	r := New(4)
	r.Write([]byte("x"))
	select {
	case <-r.Readable():
	default:
		t.Fatal("expected readable edge")
	}
	r.Write([]byte("y"))
	select {
	case <-r.Readable():
		t.Fatal("no edge while already non-empty")
	default:
	}
}

func TestConcurrentProducer(t *testing.T) {
	r := New(64)
	const total = 1000
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < total; {
			if r.Write([]byte{byte(i)}) == 1 {
				i++
			} else {
				time.Sleep(time.Microsecond)
			}
		}
	}()
	for i := 0; i < total; {
		b, ok := r.ReadByte()
		if !ok {
			time.Sleep(time.Microsecond)
			continue
		}
		if b != byte(i) {
			t.Fatalf("byte %d = %d", i, b)
		}
		i++
	}
	wg.Wait()
}

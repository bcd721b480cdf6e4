package dispatch

import (
	"context"
	"sync"
	"testing"
	"time"
)

type squareJob struct{ n int }

func (j squareJob) Run(ctx context.Context) any { return j.n * j.n }

func TestSubmitDeliversResultOnController(t *testing.T) {
	d := New(context.Background(), 4)
	defer d.Close()

	var wg sync.WaitGroup
	results := make([]int, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		i := i
		d.Submit(squareJob{n: i}, func(result any) {
			results[i] = result.(int)
			wg.Done()
		})
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for results")
	}

	for i, got := range results {
		if got != i*i {
			t.Fatalf("results[%d] = %d, want %d", i, got, i*i)
		}
	}
}

func TestPostRunsInOrder(t *testing.T) {
	d := New(context.Background(), 2)
	defer d.Close()

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		i := i
		d.Post(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			wg.Done()
		})
	}
	wg.Wait()
	for i, v := range order {
		if v != i {
			t.Fatalf("order = %v, not sequential", order)
		}
	}
}

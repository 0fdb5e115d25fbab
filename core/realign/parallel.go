// core/realign/parallel.go
package realign

import (
	"context"
	"sync"

	"ccheck-core/aln"
	"ccheck-core/frag"
)

// Options controls RealignAll.
type Options struct {
	Threads int // number of worker goroutines (>=1)

	// Want selects, by index, the fragments worth realigning; nil means all.
	Want func(i int) bool
	// OnDone is called once per realigned (or failed) fragment.
	OnDone func()
	// OnError receives per-fragment aligner failures. The fragment is left
	// out of the store.
	OnError func(i int, err error)
}

// RealignAll realigns the selected fragments with a pool of workers and
// puts the results into store under their index in frags. Callbacks run on
// worker goroutines. It returns ctx.Err() if cancelled.
func RealignAll(ctx context.Context, a LocalAligner, p aln.Pair, frags []frag.Fragment, opt Options, store *Store) error {
	if opt.Threads < 1 {
		opt.Threads = 1
	}
	jobs := make(chan int, opt.Threads*2)

	var (
		wg sync.WaitGroup
		mu sync.Mutex // serialises callbacks
	)
	wg.Add(opt.Threads)
	for w := 0; w < opt.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-jobs:
					if !ok {
						return
					}
					res, err := Fragment(a, p, &frags[i])
					if err == nil {
						store.Put(i, res)
					}
					mu.Lock()
					if err != nil && opt.OnError != nil {
						opt.OnError(i, err)
					}
					if opt.OnDone != nil {
						opt.OnDone()
					}
					mu.Unlock()
				}
			}
		}()
	}

feed:
	for i := range frags {
		if opt.Want != nil && !opt.Want(i) {
			continue
		}
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	return ctx.Err()
}

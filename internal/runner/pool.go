package runner

import (
	"runtime"
	"sync"
)

// runParallel fans the paths out to a bounded pool of workers sized to
// the available parallelism. Each worker owns its task completely (its
// own digest state and read buffer); the only shared data is the
// read-only settings and the results slice, where every task writes
// exclusively to its own index. Nothing is printed from workers; the
// caller flushes after the pool drains.
func (d *Dispatcher) runParallel(paths []string) []Outcome {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(paths) {
		workers = len(paths)
	}

	tasks := make(chan int)
	outcomes := make([]Outcome, len(paths))

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range tasks {
				outcomes[i] = d.hashOne(paths[i])
			}
		}()
	}

	for i := range paths {
		tasks <- i
	}
	close(tasks)
	wg.Wait()

	return outcomes
}

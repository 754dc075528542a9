package files

import (
	"context"
	"runtime"
	"sort"
	"sync"
)

// CollectAll reads every path under root concurrently and returns the
// results sorted by path. The output order depends only on the input paths,
// never on completion order, so repeated runs over an unchanged tree yield
// identical slices. workers <= 0 means one worker per CPU.
func CollectAll(ctx context.Context, root string, paths []string, workers int) []TrackedFile {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	tasks := make(chan string)
	results := make(chan TrackedFile, len(paths))

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case p, ok := <-tasks:
					if !ok {
						return
					}
					results <- ReadContent(root, p)
				}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for _, p := range paths {
			select {
			case <-ctx.Done():
				return
			case tasks <- p:
			}
		}
	}()

	wg.Wait()
	close(results)

	out := make([]TrackedFile, 0, len(paths))
	for tf := range results {
		out = append(out, tf)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

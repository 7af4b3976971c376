package calculator

import (
	"runtime"
	"time"
)

// 按行分配的任务, 区间 [start, end)
type task struct {
	start int
	end   int
}

// 基于行区间的任务分配
type executor struct {
	workers int
}

func newExecutor(workers int) *executor {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &executor{workers: workers}
}

// split cuts [first, last) into tasks: each worker's share is halved so that
// faster workers can pick up more, and the remainder goes out one row at a
// time.
func (e *executor) split(first, last int) []task {
	total := last - first
	if total <= 0 {
		return nil
	}
	taskLen, remainder := total/e.workers, total%e.workers

	tasks := make([]task, 0, 2*e.workers+remainder)
	start := first
	if taskLen > 0 {
		if taskLen == 1 {
			for start < last-remainder {
				tasks = append(tasks, task{start: start, end: start + 1})
				start++
			}
		} else {
			half1, half2 := taskLen/2, taskLen/2
			if taskLen%2 == 1 {
				half2++
			}
			for start < last-remainder {
				tasks = append(tasks, task{start: start, end: start + half1})
				start += half1
				tasks = append(tasks, task{start: start, end: start + half2})
				start += half2
			}
		}
	}
	for i := 0; i < remainder; i++ {
		tasks = append(tasks, task{start: start, end: start + 1})
		start++
	}
	return tasks
}

// dispatchTask runs f over [first, last) and blocks until every task is done.
// Tasks must write to disjoint data.
func (e *executor) dispatchTask(first, last int, f func(t task)) time.Duration {
	start := time.Now()
	if e.workers == 1 {
		if last > first {
			f(task{start: first, end: last})
		}
		return time.Since(start)
	}

	tasks := e.split(first, last)
	dispatchChan := make(chan task, len(tasks))
	doneSoFar := make(chan struct{}, len(tasks))

	workers := e.workers
	if workers > len(tasks) {
		workers = len(tasks)
	}
	for i := 0; i < workers; i++ {
		go func() {
			for t := range dispatchChan {
				f(t)
				doneSoFar <- struct{}{}
			}
		}()
	}
	for _, t := range tasks {
		dispatchChan <- t
	}
	close(dispatchChan)
	for range tasks {
		<-doneSoFar
	}
	return time.Since(start)
}

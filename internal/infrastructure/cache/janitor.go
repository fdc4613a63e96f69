package cache

import (
	"sync"
	"time"
)

// janitor runs fn on a ticker until stopped
type janitor struct {
	stopCh   chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func startJanitor(interval time.Duration, fn func()) *janitor {
	j := &janitor{stopCh: make(chan struct{})}
	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-j.stopCh:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()
	return j
}

func (j *janitor) stop() {
	j.stopOnce.Do(func() {
		close(j.stopCh)
		j.wg.Wait()
	})
}

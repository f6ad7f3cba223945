package graceful

import (
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Stop 收到退出信号后执行 fn
func Stop(fn func()) {
	StopWithTimeout(0, fn)
}

// StopWithTimeout 收到退出信号后执行 fn，fn 超过 timeout 未返回时放弃等待并返回 false
func StopWithTimeout(timeout time.Duration, fn func()) bool {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)
	<-done
	return run(timeout, fn)
}

func run(timeout time.Duration, fn func()) bool {
	if timeout <= 0 {
		fn()
		return true
	}

	finished := make(chan struct{})
	go func() {
		fn()
		close(finished)
	}()

	select {
	case <-finished:
		return true
	case <-time.After(timeout):
		return false
	}
}

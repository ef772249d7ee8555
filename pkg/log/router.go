package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// router 로그 레벨에 따라 엔트리를 여러 Writer로 분배하는 logrus Hook입니다.
//
//   - console: 모든 레벨
//   - critical: ERROR 이상
//   - main: INFO 이상 (DEBUG/TRACE 는 기록하지 않음)
//   - verbose: DEBUG 이하
type router struct {
	main     io.Writer
	critical io.Writer
	verbose  io.Writer
	console  io.Writer

	formatter Formatter

	mu     sync.RWMutex
	closed bool
}

func (r *router) Levels() []Level {
	return AllLevels
}

func (r *router) Fire(entry *Entry) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil
	}

	msg, err := r.formatter.Format(entry)
	if err != nil {
		return err
	}

	if r.console != nil {
		if _, err := r.console.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-WARN] 콘솔 출력 실패: %v\n", err)
		}
	}

	var firstErr error
	write := func(w io.Writer, name string) {
		if w == nil {
			return
		}
		if _, err := w.Write(msg); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-FAILURE] %s 로그 파일 쓰기 실패: %v\n", name, err)
		}
	}

	if entry.Level <= ErrorLevel {
		write(r.critical, "Critical")
	}

	// 상세 로그는 main 파일을 오염시키지 않도록 verbose 로만 보낸다.
	if entry.Level >= DebugLevel {
		write(r.verbose, "Verbose")
		return firstErr
	}

	write(r.main, "Main")

	return firstErr
}

// Close 이후의 모든 Fire 호출을 무시합니다. 진행 중인 Fire가 끝날 때까지 대기합니다.
func (r *router) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true

	return nil
}

// closer router를 먼저 닫아 로그 유입을 막은 뒤, 로그 파일들을 모두 닫습니다.
// 여러 번 호출해도 안전합니다.
type closer struct {
	router  *router
	closers []io.Closer

	closed atomic.Bool
}

func (c *closer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	if c.router != nil {
		_ = c.router.Close()
	}

	var errs error
	for _, cl := range c.closers {
		if cl == nil {
			continue
		}
		if s, ok := cl.(interface{ Sync() error }); ok {
			_ = s.Sync()
		}
		if err := cl.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return errs
}

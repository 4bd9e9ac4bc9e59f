package logger

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const flushInterval = 2 * time.Second

// AsyncFileWriter buffers log lines on a channel and drains them to disk
// from a single goroutine. Lines are dropped when the queue is full.
type AsyncFileWriter struct {
	file    *os.File
	writer  *bufio.Writer
	lines   chan []byte
	done    chan struct{}
	stopped sync.WaitGroup
	once    sync.Once
}

func NewAsyncFileWriter(path string, bufferSize int) (*AsyncFileWriter, error) {
	file, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, err
	}

	w := &AsyncFileWriter{
		file:   file,
		writer: bufio.NewWriterSize(file, bufferSize),
		lines:  make(chan []byte, 1000),
		done:   make(chan struct{}),
	}
	w.stopped.Add(1)
	go w.run()

	return w, nil
}

func (w *AsyncFileWriter) Write(p []byte) (int, error) {
	select {
	case w.lines <- append([]byte(nil), p...):
	default:
	}
	return len(p), nil
}

func (w *AsyncFileWriter) run() {
	defer w.stopped.Done()

	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	for {
		select {
		case line := <-w.lines:
			if _, err := w.writer.Write(line); err != nil {
				fmt.Fprintln(os.Stderr, "error writing log data to file", err)
			}
		case <-ticker.C:
			_ = w.writer.Flush()
		case <-w.done:
			for len(w.lines) > 0 {
				_, _ = w.writer.Write(<-w.lines)
			}
			_ = w.writer.Flush()
			return
		}
	}
}

func (w *AsyncFileWriter) Close() error {
	w.once.Do(func() {
		close(w.done)
		w.stopped.Wait()
	})
	return w.file.Close()
}

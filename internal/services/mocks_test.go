package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/vvka-141/namesetl/internal/fetch"
	"github.com/vvka-141/namesetl/internal/loader"
	"github.com/vvka-141/namesetl/pkg/namesetl"
)

type mockApprover struct {
	approved bool
	err      error
	calls    int
}

func (m *mockApprover) RequestApproval(_ context.Context, _ string) (bool, error) {
	m.calls++
	return m.approved, m.err
}

// fakeFetcher returns errs in order, then succeeds. With hang set, every
// call waits for ctx and fails the way a timed-out GET does.
type fakeFetcher struct {
	mu     sync.Mutex
	errs   []error
	calls  int
	result fetch.Result
	hang   bool
}

func (f *fakeFetcher) Extract(ctx context.Context, url, dest string) (fetch.Result, error) {
	f.mu.Lock()
	f.calls++
	hang := f.hang
	f.mu.Unlock()
	if hang {
		<-ctx.Done()
		return fetch.Result{}, &namesetl.FetchError{Kind: namesetl.FetchTransport, URL: url, Err: ctx.Err()}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls <= len(f.errs) {
		return fetch.Result{}, f.errs[f.calls-1]
	}
	res := f.result
	res.Path = dest
	return res, nil
}

type fakeLoader struct {
	rows  int
	err   error
	calls int
	opts  int
}

func (l *fakeLoader) Load(_ context.Context, _, _ string, opts ...loader.Option) (loader.Result, error) {
	l.calls++
	l.opts = len(opts)
	return loader.Result{Rows: l.rows}, l.err
}

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) record(prefix, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, prefix+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Verbose(format string, args ...any) {
	l.record("[VERBOSE] ", format, args...)
}
func (l *recordingLogger) Info(format string, args ...any)  { l.record("", format, args...) }
func (l *recordingLogger) Error(format string, args ...any) { l.record("[ERROR] ", format, args...) }

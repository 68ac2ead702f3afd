package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/vvka-141/namesetl/internal/checksum"
	"github.com/vvka-141/namesetl/pkg/namesetl"
)

// Result describes a completed fetch.
type Result struct {
	Path     string
	Bytes    int64
	Checksum string // SHA-256 of the body, hex encoded
	// ContentChecksum ignores line endings and trailing whitespace, so the
	// same table served with CRLF or LF compares equal.
	ContentChecksum string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient overrides the HTTP client used for the GET.
func WithHTTPClient(h *http.Client) Option {
	return func(f *Fetcher) {
		if h != nil {
			f.httpClient = h
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// Fetcher performs single GET requests and persists the body.
// Safe for concurrent use when callers write to distinct destinations.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	calculator checksum.Calculator
}

// New creates a Fetcher with a client bounded by namesetl.DefaultFetchTimeout.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{Timeout: namesetl.DefaultFetchTimeout},
		userAgent:  "namesetl",
		calculator: checksum.New(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Extract fetches url with a default Fetcher and writes the body to destinationPath.
func Extract(ctx context.Context, url, destinationPath string) (Result, error) {
	return New().Extract(ctx, url, destinationPath)
}

// Extract issues one GET against url and writes the full body to
// destinationPath, creating or replacing it.
func (f *Fetcher) Extract(ctx context.Context, url, destinationPath string) (Result, error) {
	if err := checkDestination(destinationPath); err != nil {
		return Result{}, &namesetl.FetchError{Kind: namesetl.FetchWrite, URL: url, Path: destinationPath, Err: err}
	}

	body, err := f.get(ctx, url)
	if err != nil {
		return Result{}, err
	}

	if !utf8.Valid(body) {
		return Result{}, &namesetl.FetchError{
			Kind: namesetl.FetchDecode,
			URL:  url,
			Err:  errors.New("response body is not valid UTF-8 text"),
		}
	}

	if err := writeFileAtomic(destinationPath, body); err != nil {
		return Result{}, &namesetl.FetchError{Kind: namesetl.FetchWrite, URL: url, Path: destinationPath, Err: err}
	}

	return Result{
		Path:            destinationPath,
		Bytes:           int64(len(body)),
		Checksum:        f.calculator.CalculateRaw(body),
		ContentChecksum: f.calculator.CalculateNormalized(body),
	}, nil
}

var errDestinationIsDir = errors.New("destination is a directory")

// checkDestination refuses paths that name a directory, so nothing is
// downloaded for a write that cannot succeed.
func checkDestination(path string) error {
	if path == "" || os.IsPathSeparator(path[len(path)-1]) {
		return errDestinationIsDir
	}
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return errDestinationIsDir
	}
	return nil
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &namesetl.FetchError{Kind: namesetl.FetchTransport, URL: url, Err: fmt.Errorf("build request: %w", err)}
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &namesetl.FetchError{Kind: namesetl.FetchTransport, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, &namesetl.FetchError{Kind: namesetl.FetchStatus, URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &namesetl.FetchError{Kind: namesetl.FetchTransport, URL: url, Err: fmt.Errorf("read body: %w", err)}
	}
	return body, nil
}

// writeFileAtomic writes data to a temporary file in the destination's
// directory and renames it into place.
func writeFileAtomic(path string, data []byte) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmpPath := filepath.Join(dir, "."+base+"."+uuid.NewString()+".part")

	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

// Package fetcher retrieves supplier price sheets from HTTP, FTP, and local
// sources.
package fetcher

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

// Fetcher defines the interface for downloading remote price sheets.
type Fetcher interface {
	// Download fetches the URL and returns the response body.
	Download(ctx context.Context, url string) (io.ReadCloser, error)

	// DownloadToFile fetches the URL and writes it to the given path. Returns bytes written.
	DownloadToFile(ctx context.Context, url string, path string) (int64, error)
}

// Options configures the fetchers behind Sources.
type Options struct {
	HTTP HTTPOptions
	FTP  FTPOptions
}

// Sources resolves a source string to a fetcher by scheme. Anything without
// an http, https or ftp scheme is read from the local filesystem.
type Sources struct {
	HTTP Fetcher
	FTP  Fetcher
}

// New returns Sources backed by an HTTPFetcher and an FTPFetcher.
func New(opts Options) *Sources {
	return &Sources{
		HTTP: NewHTTPFetcher(opts.HTTP),
		FTP:  NewFTPFetcher(opts.FTP),
	}
}

// NewWithTimeout returns Sources with default options and the given timeout.
func NewWithTimeout(timeout time.Duration) *Sources {
	return New(Options{
		HTTP: HTTPOptions{Timeout: timeout},
		FTP:  FTPOptions{Timeout: timeout},
	})
}

// Scheme returns "http", "ftp" or "file" for src.
func Scheme(src string) string {
	lower := strings.ToLower(src)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return "http"
	case strings.HasPrefix(lower, "ftp://"):
		return "ftp"
	default:
		return "file"
	}
}

// Open returns a reader over src. The caller must close it.
func (s *Sources) Open(ctx context.Context, src string) (io.ReadCloser, error) {
	switch Scheme(src) {
	case "http":
		return s.HTTP.Download(ctx, src)
	case "ftp":
		return s.FTP.Download(ctx, src)
	}
	f, err := os.Open(strings.TrimPrefix(src, "file://"))
	if err != nil {
		return nil, eris.Wrapf(err, "fetcher: open %s", src)
	}
	return f, nil
}

// Local returns a filesystem path holding src's content. Remote sources are
// downloaded into dir, keeping the base name so the extension survives.
func (s *Sources) Local(ctx context.Context, src, dir string) (string, error) {
	var f Fetcher
	switch Scheme(src) {
	case "http":
		f = s.HTTP
	case "ftp":
		f = s.FTP
	default:
		return strings.TrimPrefix(src, "file://"), nil
	}

	name := BaseName(src)
	if name == "" {
		name = "download"
	}
	path := filepath.Join(dir, name)
	if _, err := f.DownloadToFile(ctx, src, path); err != nil {
		return "", err
	}
	return path, nil
}

// BaseName returns the last path element of src with any query string or
// fragment removed.
func BaseName(src string) string {
	if i := strings.IndexAny(src, "?#"); i >= 0 {
		src = src[:i]
	}
	src = strings.TrimRight(src, "/")
	if i := strings.LastIndex(src, "/"); i >= 0 {
		src = src[i+1:]
	}
	if strings.Contains(src, ":") {
		return ""
	}
	return src
}

// Ext returns the lower-cased extension of src, ignoring query strings.
func Ext(src string) string {
	return strings.ToLower(filepath.Ext(BaseName(src)))
}

func writeFile(path string, r io.Reader) (int64, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, eris.Wrap(err, "create file")
	}
	defer file.Close() //nolint:errcheck

	n, err := io.Copy(file, r)
	if err != nil {
		return n, eris.Wrap(err, "write file")
	}
	return n, nil
}

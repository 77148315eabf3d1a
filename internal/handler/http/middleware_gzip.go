package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Writer and reader instances are pooled; gzip allocation is expensive
// relative to the small JSON bodies this API moves around.
var (
	gzWriters = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGzip transparently decompresses gzip request bodies and compresses
// responses for clients that send Accept-Encoding: gzip.
func (h *Handler) withGzip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			if err := decompressBody(r); err != nil {
				http.Error(w, "invalid gzip body", http.StatusBadRequest)
				return
			}
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzWriters.Get().(*gzip.Writer)
		zw.Reset(w)

		next.ServeHTTP(&compressedWriter{ResponseWriter: w, zw: zw}, r)

		zw.Close()
		gzWriters.Put(zw)
	})
}

// decompressBody swaps the request body for a pooled gzip reader. The reader
// returns to the pool when the body is closed.
func decompressBody(r *http.Request) error {
	zr := gzReaders.Get().(*gzip.Reader)
	if err := zr.Reset(r.Body); err != nil {
		gzReaders.Put(zr)
		return err
	}

	body := r.Body
	r.Body = &pooledBody{
		Reader: zr,
		close: func() error {
			zr.Close()
			gzReaders.Put(zr)
			return body.Close()
		},
	}
	r.Header.Del("Content-Encoding")
	return nil
}

type pooledBody struct {
	io.Reader
	close func() error
}

func (b *pooledBody) Close() error {
	return b.close()
}

type compressedWriter struct {
	http.ResponseWriter
	zw *gzip.Writer
}

func (w *compressedWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *compressedWriter) Write(data []byte) (int, error) {
	return w.zw.Write(data)
}

package poscar

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//zstd.Decoder's Close doesn't return an error, so it
//can't be an io.ReadCloser on its own.
type zstdql struct {
	*zstd.Decoder
}

func (z zstdql) Close() error {
	z.Decoder.Close()
	return nil
}

//readCloser and writeCloser close the (de)compressor first and the file after.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		if e := c.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

type writeCloser struct {
	io.Writer
	closers []io.Closer
}

func (w *writeCloser) Close() error {
	var err error
	for _, c := range w.closers {
		if e := c.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

//compression returns "gz", "zst" or "" depending on the file name.
func compression(name string) string {
	l := strings.ToLower(name)
	switch {
	case strings.HasSuffix(l, ".gz"):
		return "gz"
	case strings.HasSuffix(l, ".zst"):
		return "zst"
	}
	return ""
}

//openRead opens the file name for reading, decompressing it if the
//name so indicates.
func openRead(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	var dec io.ReadCloser
	switch compression(name) {
	case "gz":
		dec, err = gzip.NewReader(f)
	case "zst":
		var z *zstd.Decoder
		z, err = zstd.NewReader(f)
		if err == nil {
			dec = zstdql{z}
		}
	default:
		return f, nil
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	return &readCloser{dec, []io.Closer{dec, f}}, nil
}

//openWrite creates (or truncates) the file name, compressing what is
//written if the name so indicates.
func openWrite(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	var enc io.WriteCloser
	switch compression(name) {
	case "gz":
		enc = gzip.NewWriter(f)
	case "zst":
		enc, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	default:
		return f, nil
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	return &writeCloser{enc, []io.Closer{enc, f}}, nil
}

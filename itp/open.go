package itp

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// TopFile is a topology file on disk, opened for reading. Files ending in
// .gz or .zst are decompressed transparently; the parser never notices.
type TopFile struct {
	f *os.File
	z *zstd.Decoder
	g *gzip.Reader
	r *bufio.Reader
}

// OpenTop opens the named topology file.
func OpenTop(name string) (*TopFile, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	T := &TopFile{f: f}
	var h io.Reader = f
	switch {
	case strings.HasSuffix(name, ".zst"):
		T.z, err = zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		h = T.z
	case strings.HasSuffix(name, ".gz"):
		T.g, err = gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		h = T.g
	}
	T.r = bufio.NewReader(h)
	return T, nil
}

// ReadString works as in bufio.Reader; with '\n' it returns the next line
// of the (possibly compressed) file.
func (T *TopFile) ReadString(delim byte) (string, error) {
	return T.r.ReadString(delim)
}

func (T *TopFile) Close() error {
	if T == nil {
		return nil
	}
	if T.z != nil {
		T.z.Close()
	}
	if T.g != nil {
		T.g.Close()
	}
	return T.f.Close()
}

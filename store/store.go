// SPDX-License-Identifier: MIT

// Package store persists a precomputed all-pairs result as a single artifact
// file, so the serving side can load the table without recomputing it.
//
// Layout:
//
//	offset  size  field
//	0       4     magic "CNAV"
//	4       1     format version
//	5       1     serialization format: compression<<5 | checksum<<3
//	6       4     CRC32 (IEEE) of the payload, little endian; zero if unchecked
//	10      ...   payload: gob-encoded artifact, optionally snappy-compressed
package store

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/snappy"

	"github.com/katalvlaran/campusnav/allpairs"
)

// Version is the artifact format version written by Save.
const Version uint8 = 1

var magic = [4]byte{'C', 'N', 'A', 'V'}

const headerSize = 10

var (
	// ErrBadMagic indicates the input is not a campusnav artifact.
	ErrBadMagic = errors.New("store: not a campusnav artifact")

	// ErrUnsupportedVersion indicates an artifact written by an incompatible format.
	ErrUnsupportedVersion = errors.New("store: unsupported artifact version")

	// ErrChecksum indicates the payload does not match its stored checksum.
	ErrChecksum = errors.New("store: checksum mismatch")

	// ErrNilResult indicates Save was given nothing to write.
	ErrNilResult = errors.New("store: nil result")
)

// Compression is the payload compression scheme.
type Compression uint8

const (
	Uncompressed Compression = iota
	Snappy
)

func (c Compression) String() string {
	switch c {
	case Uncompressed:
		return "none"
	case Snappy:
		return "snappy"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// Checksum is the payload integrity scheme.
type Checksum uint8

const (
	NoChecksum Checksum = iota
	CRC32
)

// format packs compression and checksum into one byte.
func format(c Compression, k Checksum) uint8 {
	return (uint8(c)&0x07)<<5 | (uint8(k)&0x03)<<3
}

func parseFormat(b uint8) (Compression, Checksum) {
	return Compression(b >> 5), Checksum((b >> 3) & 0x03)
}

// Artifact is what gets encoded: the result plus provenance.
type Artifact struct {
	CreatedAt time.Time
	Method    string
	Result    *allpairs.Result
}

// Option configures Save.
type Option func(*saveOptions)

type saveOptions struct {
	compression Compression
	checksum    Checksum
	method      string
	now         func() time.Time
}

// WithCompression selects the payload compression. Default Snappy.
func WithCompression(c Compression) Option {
	return func(o *saveOptions) { o.compression = c }
}

// WithChecksum selects the payload checksum. Default CRC32.
func WithChecksum(k Checksum) Option {
	return func(o *saveOptions) { o.checksum = k }
}

// WithMethod records the algorithm that produced the result.
func WithMethod(name string) Option {
	return func(o *saveOptions) { o.method = name }
}

// Save writes res to w and returns the number of bytes written.
func Save(w io.Writer, res *allpairs.Result, opts ...Option) (int, error) {
	if res == nil {
		return 0, ErrNilResult
	}
	cfg := saveOptions{compression: Snappy, checksum: CRC32, method: allpairs.MethodDijkstra.String(), now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}

	var buf bytes.Buffer
	art := Artifact{CreatedAt: cfg.now().UTC(), Method: cfg.method, Result: res}
	if err := gob.NewEncoder(&buf).Encode(&art); err != nil {
		return 0, fmt.Errorf("store: encode: %w", err)
	}

	var payload []byte
	switch cfg.compression {
	case Uncompressed:
		payload = buf.Bytes()
	case Snappy:
		payload = snappy.Encode(nil, buf.Bytes())
	default:
		return 0, fmt.Errorf("store: illegal compression %s", cfg.compression)
	}

	var sum uint32
	switch cfg.checksum {
	case NoChecksum:
	case CRC32:
		sum = crc32.ChecksumIEEE(payload)
	default:
		return 0, fmt.Errorf("store: illegal checksum %d", cfg.checksum)
	}

	header := make([]byte, headerSize)
	copy(header, magic[:])
	header[4] = Version
	header[5] = format(cfg.compression, cfg.checksum)
	binary.LittleEndian.PutUint32(header[6:], sum)

	n, err := w.Write(header)
	if err != nil {
		return n, fmt.Errorf("store: write header: %w", err)
	}
	m, err := w.Write(payload)
	if err != nil {
		return n + m, fmt.Errorf("store: write payload: %w", err)
	}

	return n + m, nil
}

// Load reads an artifact written by Save.
func Load(r io.Reader) (*Artifact, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("store: read: %w", err)
	}
	if len(data) < headerSize || !bytes.Equal(data[:4], magic[:]) {
		return nil, ErrBadMagic
	}
	if data[4] != Version {
		return nil, fmt.Errorf("%w: %d (want %d)", ErrUnsupportedVersion, data[4], Version)
	}

	compression, checksum := parseFormat(data[5])
	stored := binary.LittleEndian.Uint32(data[6:headerSize])
	payload := data[headerSize:]

	switch checksum {
	case NoChecksum:
	case CRC32:
		if got := crc32.ChecksumIEEE(payload); got != stored {
			return nil, fmt.Errorf("%w: stored %x got %x", ErrChecksum, stored, got)
		}
	default:
		return nil, fmt.Errorf("store: illegal checksum %d", checksum)
	}

	switch compression {
	case Uncompressed:
	case Snappy:
		if payload, err = snappy.Decode(nil, payload); err != nil {
			return nil, fmt.Errorf("store: decompress: %w", err)
		}
	default:
		return nil, fmt.Errorf("store: illegal compression %s", compression)
	}

	var art Artifact
	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&art); err != nil {
		return nil, fmt.Errorf("store: decode: %w", err)
	}
	if art.Result == nil {
		return nil, fmt.Errorf("store: decode: %w", ErrNilResult)
	}

	return &art, nil
}

// SaveFile writes res to path, replacing it atomically via a temporary file
// in the same directory.
func SaveFile(path string, res *allpairs.Result, opts ...Option) (int, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".campusnav-*")
	if err != nil {
		return 0, fmt.Errorf("store: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := Save(tmp, res, opts...)
	if err != nil {
		tmp.Close()
		return n, err
	}
	if err := tmp.Close(); err != nil {
		return n, fmt.Errorf("store: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return n, fmt.Errorf("store: %w", err)
	}

	return n, nil
}

// LoadFile reads an artifact from path.
func LoadFile(path string) (*Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	defer f.Close()

	return Load(f)
}

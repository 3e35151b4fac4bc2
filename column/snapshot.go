package column

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/hupe1980/nonmax/internal/codec"
)

// Snapshot format:
//
//	[4]  magic "nmxc"
//	[4]  uint32 LE format version
//	[4]  uint32 LE metadata length
//	[..] metadata, JSON (see snapshotMeta)
//	[..] payload, little-endian slot patterns, possibly compressed
//	[4]  uint32 LE IEEE crc32 of the uncompressed payload
//
// The metadata block makes snapshots self-describing: element width,
// signedness, boundary kind and the compression actually used are recorded
// and validated on load, so a column of the wrong type refuses to restore
// instead of silently misreading bits.

var snapshotMagic = [4]byte{'n', 'm', 'x', 'c'}

const snapshotVersion = 1

type snapshotMeta struct {
	Width       int    `json:"width"`
	Signed      bool   `json:"signed"`
	Boundary    string `json:"boundary"`
	Count       int    `json:"count"`
	Live        int    `json:"live"`
	Compression string `json:"compression"`
	PayloadSize int    `json:"payload_size"`
	StoredSize  int    `json:"stored_size"`
}

// ErrCorruptSnapshot indicates snapshot bytes that cannot be decoded.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrCorruptSnapshot struct {
	Reason string
	cause  error
}

func (e *ErrCorruptSnapshot) Error() string {
	return fmt.Sprintf("corrupt column snapshot: %s", e.Reason)
}

func (e *ErrCorruptSnapshot) Unwrap() error { return e.cause }

// ErrSnapshotMismatch indicates a well-formed snapshot whose element type
// does not match the restoring column.
type ErrSnapshotMismatch struct {
	Field string
	Want  string
	Got   string
}

func (e *ErrSnapshotMismatch) Error() string {
	return fmt.Sprintf("snapshot %s mismatch: column has %s, snapshot has %s", e.Field, e.Want, e.Got)
}

// WriteTo writes a snapshot of the column to w. It implements io.WriterTo.
func (c *Column[T]) WriteTo(w io.Writer) (int64, error) {
	payload := c.payloadBytes()
	crc := crc32.ChecksumIEEE(payload)

	stored, used, err := compressPayload(payload, c.opts.Compression)
	if err != nil {
		return 0, fmt.Errorf("compress payload: %w", err)
	}

	meta := snapshotMeta{
		Width:       codec.BitWidth[T](),
		Signed:      codec.IsSigned[T](),
		Boundary:    c.boundary.String(),
		Count:       len(c.bits),
		Live:        c.live,
		Compression: used.String(),
		PayloadSize: len(payload),
		StoredSize:  len(stored),
	}
	metaBytes, err := gojson.Marshal(meta)
	if err != nil {
		return 0, fmt.Errorf("marshal metadata: %w", err)
	}

	var written int64

	header := make([]byte, 0, 12)
	header = append(header, snapshotMagic[:]...)
	header = binary.LittleEndian.AppendUint32(header, snapshotVersion)
	header = binary.LittleEndian.AppendUint32(header, uint32(len(metaBytes)))

	for _, chunk := range [][]byte{header, metaBytes, stored} {
		n, err := w.Write(chunk)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}

	var crcBuf [4]byte
	binary.LittleEndian.PutUint32(crcBuf[:], crc)
	n, err := w.Write(crcBuf[:])
	written += int64(n)
	if err != nil {
		return written, err
	}

	if c.opts.Logger != nil {
		c.opts.Logger.Debug("column snapshot written",
			"count", meta.Count,
			"live", meta.Live,
			"compression", meta.Compression,
			"payload_bytes", meta.PayloadSize,
			"stored_bytes", meta.StoredSize,
			"total_bytes", written,
		)
	}

	return written, nil
}

// ReadFrom restores the column from a snapshot produced by WriteTo. It
// implements io.ReaderFrom. The column's element type and boundary must
// match the snapshot's; on any error the column is left unchanged.
func (c *Column[T]) ReadFrom(r io.Reader) (int64, error) {
	var read int64

	var header [12]byte
	n, err := io.ReadFull(r, header[:])
	read += int64(n)
	if err != nil {
		return read, &ErrCorruptSnapshot{Reason: "short header", cause: err}
	}
	if [4]byte(header[:4]) != snapshotMagic {
		return read, &ErrCorruptSnapshot{Reason: fmt.Sprintf("bad magic %q", header[:4])}
	}
	if v := binary.LittleEndian.Uint32(header[4:8]); v != snapshotVersion {
		return read, &ErrCorruptSnapshot{Reason: fmt.Sprintf("unsupported version %d", v)}
	}

	metaLen := binary.LittleEndian.Uint32(header[8:12])
	metaBytes := make([]byte, metaLen)
	n, err = io.ReadFull(r, metaBytes)
	read += int64(n)
	if err != nil {
		return read, &ErrCorruptSnapshot{Reason: "short metadata", cause: err}
	}

	var meta snapshotMeta
	if err := gojson.Unmarshal(metaBytes, &meta); err != nil {
		return read, &ErrCorruptSnapshot{Reason: "bad metadata", cause: err}
	}

	if err := c.checkMeta(meta); err != nil {
		return read, err
	}

	compression, ok := compressionByName(meta.Compression)
	if !ok {
		return read, &ErrCorruptSnapshot{Reason: fmt.Sprintf("unknown compression %q", meta.Compression)}
	}
	if meta.StoredSize < 0 || meta.Count < 0 || meta.PayloadSize != meta.Count*(meta.Width/8) {
		return read, &ErrCorruptSnapshot{Reason: "inconsistent sizes in metadata"}
	}

	stored := make([]byte, meta.StoredSize)
	n, err = io.ReadFull(r, stored)
	read += int64(n)
	if err != nil {
		return read, &ErrCorruptSnapshot{Reason: "short payload", cause: err}
	}

	var crcBuf [4]byte
	n, err = io.ReadFull(r, crcBuf[:])
	read += int64(n)
	if err != nil {
		return read, &ErrCorruptSnapshot{Reason: "short checksum", cause: err}
	}

	payload, err := decompressPayload(stored, compression, meta.PayloadSize)
	if err != nil {
		return read, &ErrCorruptSnapshot{Reason: "payload decompression failed", cause: err}
	}

	if crc := crc32.ChecksumIEEE(payload); crc != binary.LittleEndian.Uint32(crcBuf[:]) {
		return read, &ErrCorruptSnapshot{Reason: "checksum mismatch"}
	}

	c.restorePayload(payload, meta.Count)

	if c.opts.Logger != nil {
		c.opts.Logger.Debug("column snapshot restored",
			"count", meta.Count,
			"live", c.live,
			"compression", meta.Compression,
			"total_bytes", read,
		)
	}

	return read, nil
}

func (c *Column[T]) checkMeta(meta snapshotMeta) error {
	if want := codec.BitWidth[T](); meta.Width != want {
		return &ErrSnapshotMismatch{Field: "width", Want: fmt.Sprint(want), Got: fmt.Sprint(meta.Width)}
	}
	if want := codec.IsSigned[T](); meta.Signed != want {
		return &ErrSnapshotMismatch{Field: "signedness", Want: fmt.Sprint(want), Got: fmt.Sprint(meta.Signed)}
	}
	if want := c.boundary.String(); meta.Boundary != want {
		return &ErrSnapshotMismatch{Field: "boundary", Want: want, Got: meta.Boundary}
	}
	return nil
}

// payloadBytes serializes the raw slot patterns little-endian. Converting a
// signed slot through uint64 sign-extends, so taking the low stride bytes
// yields the two's-complement pattern at any width.
func (c *Column[T]) payloadBytes() []byte {
	stride := codec.BitWidth[T]() / 8
	buf := make([]byte, 0, len(c.bits)*stride)
	for _, b := range c.bits {
		u := uint64(b)
		for i := 0; i < stride; i++ {
			buf = append(buf, byte(u>>(8*i)))
		}
	}
	return buf
}

func (c *Column[T]) restorePayload(payload []byte, count int) {
	stride := codec.BitWidth[T]() / 8
	bits := make([]T, count)
	live := 0
	for i := range bits {
		var u uint64
		for j := 0; j < stride; j++ {
			u |= uint64(payload[i*stride+j]) << (8 * j)
		}
		bits[i] = T(u)
		if bits[i] != 0 {
			live++
		}
	}
	c.bits = bits
	c.live = live
}

package wfc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/arcwave/wfc/bitmask"
	"github.com/arcwave/wfc/direction"
	"github.com/arcwave/wfc/pattern"
)

// ErrMalformedModel indicates DecodeModel read a byte stream that does not
// parse as a valid encoded model (truncated varint, short read, or a
// pattern/weight/bitmask count that disagrees with its own header).
var ErrMalformedModel = errors.New("wfc: malformed encoded model")

// EncodeModel serializes a learned model to the reference wire format
// spec.md §6 describes: varint N, varint P, then P patterns (each N·N
// varints of tile ids), then P weights (varints), then 4·P bitmasks each
// of ⌈P/64⌉ little-endian u64 words, one group of four per pattern in
// direction.All order (up, down, left, right).
//
// This format is offered by spec.md as a reference, not a conformance
// requirement; EncodeModel/DecodeModel exist as a convenience round-trip,
// not a dependency of Learn or Generate.
func EncodeModel(m *Model) ([]byte, error) {
	if m == nil || m.learned == nil {
		return nil, ErrInvalidInput
	}
	learned := m.learned
	p := learned.Table.Len()
	n := learned.Table.N

	var buf bytes.Buffer
	var scratch [binary.MaxVarintLen64]byte

	putVarint := func(v int64) {
		k := binary.PutVarint(scratch[:], v)
		buf.Write(scratch[:k])
	}

	putVarint(int64(n))
	putVarint(int64(p))

	for i := 0; i < p; i++ {
		for cell := 0; cell < n*n; cell++ {
			putVarint(int64(learned.Table.Patterns[i][cell]))
		}
	}
	for i := 0; i < p; i++ {
		putVarint(int64(learned.Weights[i]))
	}

	words := (p + 63) / 64
	wordBuf := make([]byte, 8)
	for i := 0; i < p; i++ {
		for _, d := range direction.All() {
			mask := learned.Adjacency[i][d]
			bits := mask.Bits()
			packed := make([]uint64, words)
			for _, b := range bits {
				packed[b/64] |= uint64(1) << uint(b%64)
			}
			for _, w := range packed {
				binary.LittleEndian.PutUint64(wordBuf, w)
				buf.Write(wordBuf)
			}
		}
	}

	return buf.Bytes(), nil
}

// DecodeModel parses the wire format EncodeModel produces back into a
// Model with no presets and no options set. The returned Model's learned
// adjacency table is rebuilt bit-for-bit from the encoded words, not
// recomputed from the patterns, so DecodeModel(EncodeModel(m)) reproduces
// m's Generate behavior exactly even if m's patterns were never learned
// from any real image (e.g. a hand-built test fixture).
func DecodeModel(data []byte) (*Model, error) {
	r := bytes.NewReader(data)

	n, err := readVarint(r)
	if err != nil {
		return nil, err
	}
	p, err := readVarint(r)
	if err != nil {
		return nil, err
	}
	if n < 1 || p < 1 {
		return nil, ErrMalformedModel
	}

	patterns := make([][]pattern.Tile, p)
	for i := range patterns {
		win := make([]pattern.Tile, n*n)
		for cell := range win {
			tile, err := readVarint(r)
			if err != nil {
				return nil, err
			}
			win[cell] = tile
		}
		patterns[i] = win
	}

	weights := make([]int, p)
	for i := range weights {
		w, err := readVarint(r)
		if err != nil {
			return nil, err
		}
		weights[i] = w
	}

	words := (p + 63) / 64
	wordBuf := make([]byte, 8)
	adjacency := make([][direction.Count]bitmask.Mask, p)
	for i := 0; i < p; i++ {
		for _, d := range direction.All() {
			mask := bitmask.New(p)
			for wi := 0; wi < words; wi++ {
				if _, err := io.ReadFull(r, wordBuf); err != nil {
					return nil, ErrMalformedModel
				}
				word := binary.LittleEndian.Uint64(wordBuf)
				for bit := 0; bit < 64; bit++ {
					idx := wi*64 + bit
					if idx >= p {
						break
					}
					if word&(uint64(1)<<uint(bit)) != 0 {
						mask.Set(idx)
					}
				}
			}
			adjacency[i][d] = mask
		}
	}

	learned := &pattern.Learned{
		Table:     pattern.Table{N: n, Patterns: patterns},
		Weights:   weights,
		Adjacency: adjacency,
	}
	return &Model{learned: learned}, nil
}

// readVarint reads one binary.Varint from r, translating its error modes
// into ErrMalformedModel so callers never need to distinguish io.EOF from
// a genuinely corrupt stream.
func readVarint(r *bytes.Reader) (int, error) {
	v, err := binary.ReadVarint(r)
	if err != nil {
		return 0, ErrMalformedModel
	}
	return int(v), nil
}

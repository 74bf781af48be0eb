// Package rcache snapshots compiled automata to a binary stream and loads
// them back, using rezi the way the teacher's save-game layer does
// (SPEC_FULL.md §4.9). Only the immutable automaton.Program is ever
// serialized; a Context (the mutable current-set) never is, since it holds
// no state worth persisting across a process restart.
package rcache

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/dekarrin/rezi"

	"github.com/dekarrin/gorex"
	"github.com/dekarrin/gorex/internal/automaton"
)

// entry is one named program in a snapshot stream: a name, followed by the
// rezi-encoded length-prefixed bytes of its Program.
type entry struct {
	name string
	data []byte
}

// Save writes a snapshot of every Regex in regexes, keyed by map key (not
// necessarily the Regex's own Name), to w. Only the immutable compiled
// Program travels over the wire; ID and pattern text are not preserved, so
// a Load'd Program is reusable for Check but is not itself a *gorex.Regex.
func Save(w io.Writer, regexes map[string]*gorex.Regex) error {
	if err := writeUvarint(w, uint64(len(regexes))); err != nil {
		return fmt.Errorf("rcache: writing entry count: %w", err)
	}

	for name, r := range regexes {
		encoded := rezi.EncBinary(r.Program())

		if err := writeBytes(w, []byte(name)); err != nil {
			return fmt.Errorf("rcache: writing name %q: %w", name, err)
		}
		if err := writeBytes(w, encoded); err != nil {
			return fmt.Errorf("rcache: writing program %q: %w", name, err)
		}
	}

	return nil
}

// Load reads a snapshot written by Save and returns the Programs it
// contains, keyed by name.
func Load(r io.Reader) (map[string]*automaton.Program, error) {
	count, err := readUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("rcache: reading entry count: %w", err)
	}

	out := make(map[string]*automaton.Program, count)
	for i := uint64(0); i < count; i++ {
		nameBytes, err := readBytes(r)
		if err != nil {
			return nil, fmt.Errorf("rcache: reading entry %d name: %w", i, err)
		}
		data, err := readBytes(r)
		if err != nil {
			return nil, fmt.Errorf("rcache: reading entry %d program: %w", i, err)
		}

		prog := &automaton.Program{}
		if _, err := rezi.DecBinary(data, prog); err != nil {
			return nil, fmt.Errorf("rcache: decoding entry %q: %w", string(nameBytes), err)
		}
		out[string(nameBytes)] = prog
	}

	return out, nil
}

func writeUvarint(w io.Writer, v uint64) error {
	buf := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(buf, v)
	_, err := w.Write(buf[:n])
	return err
}

func readUvarint(r io.Reader) (uint64, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = &singleByteReader{r: r}
	}
	return binary.ReadUvarint(br)
}

func writeBytes(w io.Writer, b []byte) error {
	if err := writeUvarint(w, uint64(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

func readBytes(r io.Reader) ([]byte, error) {
	n, err := readUvarint(r)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// singleByteReader adapts an io.Reader without ReadByte to io.ByteReader,
// for use with binary.ReadUvarint against an arbitrary stream.
type singleByteReader struct {
	r   io.Reader
	buf [1]byte
}

func (s *singleByteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		return 0, err
	}
	return s.buf[0], nil
}

// Package blorb reads Blorb resource files, the IFF-based container
// that bundles a story file with its images and sounds. A Blorb is a
// FORM file of type IFRS whose first chunk is a resource index mapping
// (usage, number) pairs to chunk offsets.
package blorb

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrInvalidFileType is returned when the data is not an IFRS FORM
	// file.
	ErrInvalidFileType = errors.New("not a FORM file")
	// ErrEndOfFile is returned by Next after the last chunk.
	ErrEndOfFile = errors.New("no more chunks")
)

// InvalidResourceTypeError reports an unrecognized usage tag in the
// resource index.
type InvalidResourceTypeError struct {
	Tag string
}

func (e *InvalidResourceTypeError) Error() string {
	return fmt.Sprintf("invalid resource type %q", e.Tag)
}

// ResourceNotFoundError reports a lookup that matched no index entry.
type ResourceNotFoundError struct {
	ID uint32
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("resource %d not found", e.ID)
}

// ChunkType is a four-character IFF tag.
type ChunkType string

const (
	TypeForm ChunkType = "FORM"
	TypeIfrs ChunkType = "IFRS"
	TypeRidx ChunkType = "RIdx"
	TypeFspc ChunkType = "Fspc"
	TypeExec ChunkType = "Exec"
	TypePict ChunkType = "Pict"
	TypeSnd  ChunkType = "Snd "
	TypeData ChunkType = "Data"
)

// parseUsage validates a resource index usage tag.
func parseUsage(tag string) (ChunkType, error) {
	switch t := ChunkType(tag); t {
	case TypePict, TypeSnd, TypeExec, TypeData:
		return t, nil
	default:
		return "", &InvalidResourceTypeError{Tag: tag}
	}
}

// Chunk is one chunk of a Blorb file. For FORM chunks Bytes holds the
// whole chunk including its header, so the result is itself a valid IFF
// file; for all other types Bytes holds the chunk data only.
type Chunk struct {
	Type  ChunkType
	Bytes []byte
}

// ResourceInfo is one entry of the resource index.
type ResourceInfo struct {
	Usage  ChunkType
	ID     uint32
	Offset uint32
}

// Reader reads chunks and resources out of an in-memory Blorb image.
type Reader struct {
	data []byte
	pos  int
	ridx []ResourceInfo

	// body is where the first chunk starts, just past the FORM header.
	body int
}

// New validates the container and parses the resource index.
func New(data []byte) (*Reader, error) {
	if len(data) < 12 || string(data[0:4]) != string(TypeForm) {
		return nil, ErrInvalidFileType
	}
	size := binary.BigEndian.Uint32(data[4:8])
	if int(size)+8 > len(data) {
		return nil, ErrInvalidFileType
	}
	if string(data[8:12]) != string(TypeIfrs) {
		return nil, ErrInvalidFileType
	}

	r := &Reader{data: data[:size+8], body: 12, pos: 12}
	if err := r.parseIndex(); err != nil {
		return nil, err
	}
	return r, nil
}

// parseIndex reads the RIdx chunk, which must come first.
func (r *Reader) parseIndex() error {
	if len(r.data) < r.body+8 || string(r.data[r.body:r.body+4]) != string(TypeRidx) {
		return ErrInvalidFileType
	}
	size := binary.BigEndian.Uint32(r.data[r.body+4 : r.body+8])
	entries := r.data[r.body+8 : r.body+8+int(size)]
	if len(entries) < 4 {
		return ErrInvalidFileType
	}
	count := binary.BigEndian.Uint32(entries[0:4])
	if uint32(len(entries)-4) < count*12 {
		return ErrInvalidFileType
	}
	for i := uint32(0); i < count; i++ {
		e := entries[4+i*12:]
		usage, err := parseUsage(string(e[0:4]))
		if err != nil {
			return err
		}
		r.ridx = append(r.ridx, ResourceInfo{
			Usage:  usage,
			ID:     binary.BigEndian.Uint32(e[4:8]),
			Offset: binary.BigEndian.Uint32(e[8:12]),
		})
	}
	return nil
}

// chunkAt reads the chunk whose header starts at offset.
func (r *Reader) chunkAt(offset uint32) (Chunk, error) {
	if int(offset)+8 > len(r.data) {
		return Chunk{}, ErrInvalidFileType
	}
	tag := ChunkType(r.data[offset : offset+4])
	size := binary.BigEndian.Uint32(r.data[offset+4 : offset+8])
	end := int(offset) + 8 + int(size)
	if end > len(r.data) {
		return Chunk{}, ErrInvalidFileType
	}
	if tag == TypeForm {
		// Keep the header so the chunk stands alone as an IFF file.
		return Chunk{Type: tag, Bytes: r.data[offset:end]}, nil
	}
	return Chunk{Type: tag, Bytes: r.data[offset+8 : end]}, nil
}

// Resources returns the parsed resource index.
func (r *Reader) Resources() []ResourceInfo {
	out := make([]ResourceInfo, len(r.ridx))
	copy(out, r.ridx)
	return out
}

// ResourceByID returns the chunk for the resource with the given usage
// and number.
func (r *Reader) ResourceByID(usage ChunkType, id uint32) (Chunk, error) {
	for _, info := range r.ridx {
		if info.Usage == usage && info.ID == id {
			return r.chunkAt(info.Offset)
		}
	}
	return Chunk{}, &ResourceNotFoundError{ID: id}
}

// FirstResourceByType returns the lowest-numbered resource with the
// given usage.
func (r *Reader) FirstResourceByType(usage ChunkType) (Chunk, error) {
	found := false
	var best ResourceInfo
	for _, info := range r.ridx {
		if info.Usage == usage && (!found || info.ID < best.ID) {
			best = info
			found = true
		}
	}
	if !found {
		return Chunk{}, &ResourceNotFoundError{ID: 0}
	}
	return r.chunkAt(best.Offset)
}

// Next returns the next chunk in file order, resource index included.
// It returns ErrEndOfFile past the last chunk.
func (r *Reader) Next() (Chunk, error) {
	if r.pos >= len(r.data) {
		return Chunk{}, ErrEndOfFile
	}
	chunk, err := r.chunkAt(uint32(r.pos))
	if err != nil {
		return Chunk{}, err
	}
	size := binary.BigEndian.Uint32(r.data[r.pos+4 : r.pos+8])
	r.pos += 8 + int(size)
	// Chunks start on even boundaries; odd sizes carry a pad byte.
	if size%2 == 1 {
		r.pos++
	}
	return chunk, nil
}

// Rewind restarts Next at the first chunk.
func (r *Reader) Rewind() {
	r.pos = r.body
}

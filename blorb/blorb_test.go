package blorb

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// builder assembles a Blorb image for tests.
type builder struct {
	entries []ResourceInfo
	chunks  []byte
}

// addChunk appends a raw chunk to the body and returns its offset
// relative to where the body will start (after FORM header + RIdx).
func (b *builder) addChunk(tag string, data []byte) int {
	off := len(b.chunks)
	b.chunks = append(b.chunks, tag...)
	b.chunks = binary.BigEndian.AppendUint32(b.chunks, uint32(len(data)))
	b.chunks = append(b.chunks, data...)
	if len(data)%2 == 1 {
		b.chunks = append(b.chunks, 0)
	}
	return off
}

func (b *builder) addResource(usage string, id uint32, bodyOffset int) {
	b.entries = append(b.entries, ResourceInfo{Usage: ChunkType(usage), ID: id, Offset: uint32(bodyOffset)})
}

func (b *builder) build() []byte {
	ridxSize := 4 + 12*len(b.entries)
	bodyStart := 12 + 8 + ridxSize

	var out []byte
	out = append(out, "FORM"...)
	out = binary.BigEndian.AppendUint32(out, uint32(4+8+ridxSize+len(b.chunks)))
	out = append(out, "IFRS"...)
	out = append(out, "RIdx"...)
	out = binary.BigEndian.AppendUint32(out, uint32(ridxSize))
	out = binary.BigEndian.AppendUint32(out, uint32(len(b.entries)))
	for _, e := range b.entries {
		out = append(out, string(e.Usage)...)
		out = binary.BigEndian.AppendUint32(out, e.ID)
		out = binary.BigEndian.AppendUint32(out, e.Offset+uint32(bodyStart))
	}
	return append(out, b.chunks...)
}

func testBlorb(t *testing.T) []byte {
	t.Helper()
	var b builder
	pict := b.addChunk("PNG ", []byte("fake png bits"))
	exec := b.addChunk("GLUL", []byte("story"))
	b.addChunk("AUTH", []byte("nobody"))
	b.addResource("Pict", 1, pict)
	b.addResource("Exec", 0, exec)
	return b.build()
}

func TestNewRejectsGarbage(t *testing.T) {
	_, err := New([]byte("not a blorb at all"))
	assert.ErrorIs(t, err, ErrInvalidFileType)

	_, err = New([]byte{})
	assert.ErrorIs(t, err, ErrInvalidFileType)
}

func TestNewRejectsWrongFormType(t *testing.T) {
	data := []byte("FORM\x00\x00\x00\x04AIFF")
	_, err := New(data)
	assert.ErrorIs(t, err, ErrInvalidFileType)
}

func TestNewRejectsTruncatedForm(t *testing.T) {
	data := testBlorb(t)
	// Claim more content than the file holds.
	binary.BigEndian.PutUint32(data[4:8], uint32(len(data)))
	_, err := New(data)
	assert.ErrorIs(t, err, ErrInvalidFileType)
}

func TestNewRejectsBadUsage(t *testing.T) {
	var b builder
	off := b.addChunk("PNG ", []byte("x"))
	b.addResource("Bogu", 1, off)
	_, err := New(b.build())

	var typeErr *InvalidResourceTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "Bogu", typeErr.Tag)
}

func TestResources(t *testing.T) {
	r, err := New(testBlorb(t))
	require.NoError(t, err)

	infos := r.Resources()
	require.Len(t, infos, 2)
	assert.Equal(t, TypePict, infos[0].Usage)
	assert.Equal(t, uint32(1), infos[0].ID)
	assert.Equal(t, TypeExec, infos[1].Usage)
}

func TestResourceByID(t *testing.T) {
	r, err := New(testBlorb(t))
	require.NoError(t, err)

	chunk, err := r.ResourceByID(TypePict, 1)
	require.NoError(t, err)
	assert.Equal(t, ChunkType("PNG "), chunk.Type)
	assert.Equal(t, []byte("fake png bits"), chunk.Bytes)

	_, err = r.ResourceByID(TypePict, 2)
	var notFound *ResourceNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint32(2), notFound.ID)

	_, err = r.ResourceByID(TypeSnd, 1)
	assert.ErrorAs(t, err, &notFound)
}

func TestFirstResourceByType(t *testing.T) {
	var b builder
	hi := b.addChunk("PNG ", []byte("second"))
	lo := b.addChunk("PNG ", []byte("first"))
	b.addResource("Pict", 5, hi)
	b.addResource("Pict", 2, lo)

	r, err := New(b.build())
	require.NoError(t, err)

	chunk, err := r.FirstResourceByType(TypePict)
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), chunk.Bytes)

	_, err = r.FirstResourceByType(TypeExec)
	var notFound *ResourceNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestNestedFormKeepsHeader(t *testing.T) {
	var b builder
	inner := []byte("AIFFsnd!")
	off := b.addChunk("FORM", inner)
	b.addResource("Snd ", 3, off)

	r, err := New(b.build())
	require.NoError(t, err)

	chunk, err := r.ResourceByID(TypeSnd, 3)
	require.NoError(t, err)
	assert.Equal(t, TypeForm, chunk.Type)
	// FORM resources come back with their header so they parse as
	// standalone IFF files.
	assert.Equal(t, []byte("FORM"), chunk.Bytes[0:4])
	assert.Equal(t, inner, chunk.Bytes[8:])
}

func TestNextIteratesAllChunks(t *testing.T) {
	r, err := New(testBlorb(t))
	require.NoError(t, err)

	var tags []ChunkType
	for {
		chunk, err := r.Next()
		if err == ErrEndOfFile {
			break
		}
		require.NoError(t, err)
		tags = append(tags, chunk.Type)
	}
	assert.Equal(t, []ChunkType{TypeRidx, "PNG ", "GLUL", "AUTH"}, tags)

	r.Rewind()
	chunk, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, TypeRidx, chunk.Type)
}

func TestNextHandlesOddSizePadding(t *testing.T) {
	var b builder
	b.addChunk("AUTH", []byte("abc")) // odd size, padded
	b.addChunk("ANNO", []byte("note"))
	data := b.build()

	r, err := New(data)
	require.NoError(t, err)

	r.Next() // RIdx
	first, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, ChunkType("AUTH"), first.Type)
	assert.Equal(t, []byte("abc"), first.Bytes)

	second, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, ChunkType("ANNO"), second.Type)

	_, err = r.Next()
	assert.ErrorIs(t, err, ErrEndOfFile)
}

// Package fileref tracks references to files the player's program may
// open as streams. A fileref names a file and its intended usage; it
// does not hold the file open.
package fileref

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrUnknownFileRef is returned when an ID names no live fileref.
var ErrUnknownFileRef = errors.New("unknown file reference")

// Usage says what the file is for. It guides naming and suffix
// conventions; the stream layer does not care.
type Usage int

const (
	// Data is general-purpose program data.
	Data Usage = iota
	// SavedGame is a saved play session.
	SavedGame
	// Transcript is a log of the play session's text.
	Transcript
	// InputRecord is a log of the player's commands.
	InputRecord
)

var usageNames = map[Usage]string{
	Data:        "Data",
	SavedGame:   "SavedGame",
	Transcript:  "Transcript",
	InputRecord: "InputRecord",
}

// String returns a human-readable name for the usage.
func (u Usage) String() string {
	if name, ok := usageNames[u]; ok {
		return name
	}
	return "Unknown"
}

// FileRef names a file on disk.
type FileRef struct {
	Usage Usage
	Path  string
	Temp  bool
	Rock  int32
}

// Manager owns all live filerefs. It is not safe for concurrent use.
type Manager struct {
	refs   map[uint32]*FileRef
	nextID uint32
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{
		refs:   make(map[uint32]*FileRef),
		nextID: 1,
	}
}

func (m *Manager) add(ref *FileRef) uint32 {
	id := m.nextID
	m.nextID++
	m.refs[id] = ref
	return id
}

// CreateTemp makes a fileref for a fresh scratch file under the system
// temporary directory. The file itself is created when a stream opens
// the ref.
func (m *Manager) CreateTemp(usage Usage, rock int32) uint32 {
	path := filepath.Join(os.TempDir(), "goglk-"+uuid.NewString()+".glkdata")
	return m.add(&FileRef{Usage: usage, Path: path, Temp: true, Rock: rock})
}

// CreateNamed makes a fileref for the given path.
func (m *Manager) CreateNamed(usage Usage, path string, rock int32) uint32 {
	return m.add(&FileRef{Usage: usage, Path: path, Rock: rock})
}

// Get returns a fileref by ID.
func (m *Manager) Get(id uint32) (*FileRef, bool) {
	ref, ok := m.refs[id]
	return ref, ok
}

// Exists reports whether the referenced file is present on disk.
func (m *Manager) Exists(id uint32) (bool, error) {
	ref, ok := m.refs[id]
	if !ok {
		return false, ErrUnknownFileRef
	}
	_, err := os.Stat(ref.Path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// DeleteFile removes the referenced file from disk. The fileref itself
// stays live.
func (m *Manager) DeleteFile(id uint32) error {
	ref, ok := m.refs[id]
	if !ok {
		return ErrUnknownFileRef
	}
	return os.Remove(ref.Path)
}

// Destroy forgets a fileref. The file, if any, stays on disk.
func (m *Manager) Destroy(id uint32) error {
	if _, ok := m.refs[id]; !ok {
		return ErrUnknownFileRef
	}
	delete(m.refs, id)
	return nil
}

// Len reports the number of live filerefs.
func (m *Manager) Len() int {
	return len(m.refs)
}

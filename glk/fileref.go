package glk

import "github.com/dshills/goglk/fileref"

// FileRefCreateTemp makes a fileref for a fresh scratch file.
func (g *Glk) FileRefCreateTemp(usage FileUsage, rock int32) FileRefID {
	return g.filerefs.CreateTemp(usage, rock)
}

// FileRefCreateByName makes a fileref for the given path.
func (g *Glk) FileRefCreateByName(usage FileUsage, path string, rock int32) FileRefID {
	return g.filerefs.CreateNamed(usage, path, rock)
}

// FileRefGetRock returns a fileref's rock value.
func (g *Glk) FileRefGetRock(id FileRefID) (int32, error) {
	ref, ok := g.filerefs.Get(id)
	if !ok {
		return 0, fileref.ErrUnknownFileRef
	}
	return ref.Rock, nil
}

// FileRefDoesFileExist reports whether the referenced file is on disk.
func (g *Glk) FileRefDoesFileExist(id FileRefID) (bool, error) {
	return g.filerefs.Exists(id)
}

// FileRefDeleteFile removes the referenced file from disk.
func (g *Glk) FileRefDeleteFile(id FileRefID) error {
	return g.filerefs.DeleteFile(id)
}

// FileRefDestroy forgets a fileref, leaving any file on disk.
func (g *Glk) FileRefDestroy(id FileRefID) error {
	return g.filerefs.Destroy(id)
}

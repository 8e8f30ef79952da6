// Package fileutil provides file system utilities including atomic copies.
package fileutil

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// AtomicCopyFile copies src to dst using a temp file in dst's directory and
// a rename, so an interrupted copy never leaves a truncated dst behind. An
// existing dst is replaced.
//
// The caller is responsible for ensuring the parent directory exists; a
// missing directory is reported as an error rather than created. If perm is
// zero, src's permission bits are used.
func AtomicCopyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrap(err, "opening source")
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return errors.Wrap(err, "reading source info")
	}
	if !info.Mode().IsRegular() {
		return errors.Newf("%s is not a regular file", src)
	}
	if perm == 0 {
		perm = info.Mode().Perm()
	}

	// Same directory as dst so the rename stays on one filesystem.
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".extbuild-copy-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}

	tmpName := tmp.Name()
	defer func() {
		// Only present if the rename did not happen.
		if _, statErr := os.Stat(tmpName); statErr == nil {
			os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}

	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return errors.Wrap(err, "setting file permissions")
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}

	if err := os.Rename(tmpName, dst); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}

	return nil
}

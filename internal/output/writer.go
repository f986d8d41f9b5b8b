package output

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"ipjournal/pkg/models"
	"ipjournal/pkg/utils"
)

// ResultFile is the name of the file written into the output directory
const ResultFile = "result.txt"

// Path returns the result file path for an output directory
func Path(dir string) string {
	return filepath.Join(dir, ResultFile)
}

// Write stores one "<address> -> <count>" line per key into dir/result.txt.
// The file is replaced atomically; a failed write leaves the previous result in place.
func Write(dir string, counts *models.EntryCounts) (string, error) {
	target := Path(dir)

	tmp, err := os.CreateTemp(dir, ".result-*.tmp")
	if err != nil {
		return "", &utils.IOError{Op: "create", Path: target, Err: err}
	}
	tmpName := tmp.Name()

	fail := func(op string, err error) (string, error) {
		tmp.Close()
		os.Remove(tmpName)
		return "", &utils.IOError{Op: op, Path: target, Err: err}
	}

	w := bufio.NewWriter(tmp)
	for _, key := range counts.Keys() {
		if _, err := fmt.Fprintf(w, "%s -> %d\n", key, counts.Get(key)); err != nil {
			return fail("write", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fail("write", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fail("chmod", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", &utils.IOError{Op: "close", Path: target, Err: err}
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return "", &utils.IOError{Op: "rename", Path: target, Err: err}
	}

	return target, nil
}

// internal/assembly/names.go
package assembly

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FixupName strips the mate and segment suffixes that assemblers encode in
// read names: "/1", "/2", "_b", "_f" and ",_b".
func FixupName(name string) string {
	if strings.HasSuffix(name, "/1") || strings.HasSuffix(name, "/2") {
		name = name[:len(name)-2]
	}
	n := len(name)
	if n > 3 && (name[n-1] == 'b' || name[n-1] == 'f') && name[n-2] == '_' {
		if name[n-3] == ',' {
			return name[:n-3]
		}
		return name[:n-2]
	}
	return name
}

// Latest looks next to path for the file of the highest iteration, that
// is, the same name with a larger numeric suffix. Iterative assemblers
// write foo.1, foo.2, ...; given any of them (or the bare stem) the last
// one is returned. Without a numbered sibling above 1, path comes back
// unchanged.
func Latest(path string) string {
	dir, file := filepath.Split(path)
	base := strings.TrimRight(file, "0123456789")

	scan := dir
	if scan == "" {
		scan = "."
	}
	entries, err := os.ReadDir(scan)
	if err != nil {
		return path
	}
	best, num := path, 1
	for _, e := range entries {
		name := e.Name()
		if len(name) <= len(base) || !strings.HasPrefix(name, base) {
			continue
		}
		suffix := name[len(base):]
		if strings.TrimLeft(suffix, "0123456789") != "" {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil || n <= num {
			continue
		}
		num, best = n, filepath.Join(dir, name)
	}
	return best
}

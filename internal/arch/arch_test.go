// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.." // module root
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	presentation := []string{
		"ccheck/internal/appcore", "ccheck/internal/app",
		"ccheck/internal/cli", "ccheck/internal/config", "ccheck/cmd/",
	}
	bans := map[string][]string{
		"ccheck/internal/assembly": append([]string{
			"ccheck/internal/output", "ccheck/internal/writers", "ccheck/internal/pretty",
		}, presentation...),
		"ccheck/internal/output":   presentation,
		"ccheck/internal/writers":  presentation,
		"ccheck/internal/pretty":   presentation,
		"ccheck/internal/progress": presentation,
		"ccheck/internal/config": {
			"ccheck/internal/appcore", "ccheck/internal/app", "ccheck/internal/cli", "ccheck/cmd/",
		},
		// The wire schema stands alone.
		"ccheck/pkg/api": {"ccheck/", "ccheck-core/"},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "ccheck/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}

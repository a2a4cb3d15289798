package internalcheck

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// TestCgoConfinedToFFI checks that the public package never imports
// "C" or "unsafe". Native access goes through internal/ffi only, so
// the public surface stays portable and the stub build keeps working.
func TestCgoConfinedToFFI(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, "github.com/fitzgo/mupdf-go/pkg/mupdf")
	if err != nil {
		t.Fatalf("load package: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			for _, imp := range file.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				if err != nil {
					continue
				}
				if path == "C" || path == "unsafe" {
					pos := pkg.Fset.Position(imp.Pos())
					findings = append(findings, fmt.Sprintf("%s: import of %q outside internal/ffi", pos, path))
				}
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("cgo isolation policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

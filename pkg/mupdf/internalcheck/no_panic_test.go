package internalcheck

import (
	"fmt"
	"go/ast"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// TestNoPanicInLibrary checks that library code reports failures as
// errors instead of panicking. Native exceptions are already converted
// to error returns at the ffi boundary; a panic above that would
// bypass the error taxonomy callers program against.
func TestNoPanicInLibrary(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesSizes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg,
		"github.com/fitzgo/mupdf-go/pkg/mupdf",
		"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/ffi",
	)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			fset := pkg.Fset
			ast.Inspect(file, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}

				ident, ok := call.Fun.(*ast.Ident)
				if !ok || ident.Name != "panic" {
					return true
				}

				obj := pkg.TypesInfo.Uses[ident]
				if obj != nil && obj.Pkg() != nil {
					// Shadowed identifier, not the builtin.
					return true
				}

				pos := fset.Position(call.Pos())
				findings = append(findings, fmt.Sprintf("%s: panic in library code; return an error", pos))
				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Fatalf("no-panic policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

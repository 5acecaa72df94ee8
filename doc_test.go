package fhirmodel

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"
)

// TestModelSourcesDocumented keeps the model packages free of generated-code
// markers and requires a doc comment on every exported declaration.
func TestModelSourcesDocumented(t *testing.T) {
	for _, dir := range []string{"datatype", "resource", "schema"} {
		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		if err != nil {
			t.Fatal(err)
		}
		for _, path := range files {
			if strings.HasSuffix(path, "_test.go") {
				continue
			}
			t.Run(path, func(t *testing.T) {
				f, err := parser.ParseFile(token.NewFileSet(), path, nil, parser.ParseComments)
				if err != nil {
					t.Fatal(err)
				}
				if ast.IsGenerated(f) {
					t.Error("file is marked as generated")
				}
				for _, decl := range f.Decls {
					switch d := decl.(type) {
					case *ast.FuncDecl:
						if d.Name.IsExported() && d.Doc == nil {
							t.Errorf("%s has no doc comment", d.Name.Name)
						}
					case *ast.GenDecl:
						if d.Tok != token.TYPE {
							continue
						}
						for _, spec := range d.Specs {
							ts := spec.(*ast.TypeSpec)
							if ts.Name.IsExported() && d.Doc == nil && ts.Doc == nil {
								t.Errorf("type %s has no doc comment", ts.Name.Name)
							}
						}
					}
				}
			})
		}
	}
}

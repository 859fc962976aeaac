// Program genkinds generates the itron.ErrorKind methods of every kind type
// declared through a KindTable literal in the package in the current
// directory.
//
//	var signalKinds = itron.KindTable[SignalError]{...}
//
// yields FromErrorCode, String and Available methods on SignalError which
// delegate to signalKinds.
package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"
)

const modulePath = "github.com/solid-rs/itron-rs"

type kind struct {
	Type  string
	Table string
}

type file struct {
	Package string
	// Qualifier for the itron package, empty inside it.
	Qual  string
	Kinds []kind
}

var tmpl = template.Must(template.New("kinds").Parse(`// Code generated by genkinds; DO NOT EDIT.

package {{ .Package }}
{{ if .Qual }}
import "` + modulePath + `"
{{ end }}
{{- range .Kinds }}
func ({{ .Type }}) FromErrorCode(code {{ $.Qual }}ErrorCode) ({{ .Type }}, bool) {
	return {{ .Table }}.Classify(code)
}

func (k {{ .Type }}) String() string {
	return {{ .Table }}.Name(k)
}

func (k {{ .Type }}) Available() bool {
	return {{ .Table }}.Available(k)
}
{{ end }}`))

// tableType returns the kind type of a KindTable composite literal.
func tableType(expr ast.Expr) (string, bool) {
	lit, ok := expr.(*ast.CompositeLit)
	if !ok {
		return "", false
	}
	index, ok := lit.Type.(*ast.IndexExpr)
	if !ok {
		return "", false
	}

	switch x := index.X.(type) {
	case *ast.SelectorExpr:
		if x.Sel.Name != "KindTable" {
			return "", false
		}
	case *ast.Ident:
		if x.Name != "KindTable" {
			return "", false
		}
	default:
		return "", false
	}

	typ, ok := index.Index.(*ast.Ident)
	if !ok {
		return "", false
	}
	return typ.Name, true
}

func collect(dir, output string) (*file, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return nil, err
	}

	fset := token.NewFileSet()
	out := &file{}
	for _, path := range paths {
		base := filepath.Base(path)
		if base == output || strings.HasSuffix(base, "_test.go") {
			continue
		}

		f, err := parser.ParseFile(fset, path, nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, err
		}
		out.Package = f.Name.Name

		for _, decl := range f.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.VAR {
				continue
			}
			for _, spec := range gen.Specs {
				vs := spec.(*ast.ValueSpec)
				for i, value := range vs.Values {
					if typ, ok := tableType(value); ok {
						out.Kinds = append(out.Kinds, kind{typ, vs.Names[i].Name})
					}
				}
			}
		}
	}

	if out.Package != "itron" {
		out.Qual = "itron."
	}
	slices.SortFunc(out.Kinds, func(a, b kind) int { return strings.Compare(a.Type, b.Type) })
	return out, nil
}

func run(args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: genkinds <output>")
		return fmt.Errorf("expected one argument")
	}

	output := args[0]
	f, err := collect(".", output)
	if err != nil {
		return err
	}
	if len(f.Kinds) == 0 {
		return fmt.Errorf("no KindTable literals found")
	}

	fmt.Println("Generating", output)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, f); err != nil {
		return err
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return err
	}

	return os.WriteFile(output, formatted, 0666)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

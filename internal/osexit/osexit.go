// Package osexit запрещает прямой вызов os.Exit в функции main пакета main.
package osexit

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
)

var Analyzer = &analysis.Analyzer{
	Name: "osexit",
	Doc:  "forbids direct os.Exit calls in main function of main package",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	for _, file := range pass.Files {
		// Сгенерированный go test main вызывает os.Exit
		if strings.Contains(pass.Fset.Position(file.Pos()).Filename, "go-build") {
			continue
		}

		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil || fn.Name.Name != "main" || fn.Body == nil {
				continue
			}

			ast.Inspect(fn.Body, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}
				sel, ok := call.Fun.(*ast.SelectorExpr)
				if !ok {
					return true
				}
				if f, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func); ok && isOSExit(f) {
					pass.Reportf(call.Pos(), "direct call to os.Exit in main function of main package")
				}
				return true
			})
		}
	}

	return nil, nil
}

func isOSExit(f *types.Func) bool {
	return f.Pkg() != nil && f.Pkg().Path() == "os" && f.Name() == "Exit"
}

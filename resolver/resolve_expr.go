package resolver

import "github.com/golox-lang/golox/ast"

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		// nothing to resolve

	case *ast.GroupingExpr:
		r.resolveExpr(e.Inner)

	case *ast.UnaryExpr:
		r.resolveExpr(e.Operand)

	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.TernaryExpr:
		r.resolveExpr(e.Cond)
		r.resolveExpr(e.Then)
		r.resolveExpr(e.Else)

	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if defined, declared := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; declared && !defined {
				r.reporter.ReportAtToken(e.Name.Line, e.Name.Lexeme, false,
					"Cannot read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)

	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)

	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}

	case *ast.GetExpr:
		r.resolveExpr(e.Object)

	case *ast.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.ThisExpr:
		if r.clsKind == ckNone {
			r.reporter.ReportAtToken(e.Keyword.Line, e.Keyword.Lexeme, false,
				"Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, e.Keyword)

	case *ast.SuperExpr:
		switch r.clsKind {
		case ckNone:
			r.reporter.ReportAtToken(e.Keyword.Line, e.Keyword.Lexeme, false,
				"Can't use 'super' outside of a class.")
			return
		case ckClass:
			r.reporter.ReportAtToken(e.Keyword.Line, e.Keyword.Lexeme, false,
				"Can't use 'super' in a class with no superclass.")
			return
		}
		r.resolveLocal(e, e.Keyword)

	default:
		panic("resolver: unhandled expression type")
	}
}

package resolver

import "github.com/golox-lang/golox/ast"

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, fkFunction)

	case *ast.ClassStmt:
		r.resolveClass(s)

	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)

	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)

	case *ast.ReturnStmt:
		if r.fnKind == fkNone {
			r.reporter.ReportAtToken(s.Keyword.Line, s.Keyword.Lexeme, false,
				"Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.fnKind == fkInitializer {
				r.reporter.ReportAtToken(s.Keyword.Line, s.Keyword.Lexeme, false,
					"Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Cond)
		r.loopDepth++
		r.resolveStmt(s.Body)
		r.loopDepth--

	case *ast.FlowStmt:
		// Static detection of break/continue outside a loop.
		if r.loopDepth == 0 {
			r.reporter.ReportAtToken(s.Keyword.Line, s.Keyword.Lexeme, false,
				"Flow statement used outside loop.")
		}

	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionKind) {
	enclosingFn := r.fnKind
	enclosingLoopDepth := r.loopDepth
	r.fnKind = kind
	// A function body is a new call frame: a bare `break`/`continue` inside
	// it does not reach back through to a loop the function happens to be
	// textually nested in.
	r.loopDepth = 0
	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
	r.fnKind = enclosingFn
	r.loopDepth = enclosingLoopDepth
}

func (r *Resolver) resolveClass(cls *ast.ClassStmt) {
	enclosingCls := r.clsKind
	r.clsKind = ckClass
	r.declare(cls.Name)
	r.define(cls.Name)

	if cls.Superclass != nil {
		if cls.Superclass.Name.Lexeme == cls.Name.Lexeme {
			r.reporter.ReportAtToken(cls.Superclass.Name.Line, cls.Superclass.Name.Lexeme, false,
				"A class can't inherit from itself.")
		}
		r.clsKind = ckSubclass
		r.resolveExpr(cls.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range cls.Methods {
		kind := fkMethod
		if method.Name.Lexeme == "init" {
			kind = fkInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if cls.Superclass != nil {
		r.endScope()
	}

	r.clsKind = enclosingCls
}

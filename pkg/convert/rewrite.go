// Copyright hamp Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package convert

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/ast/astutil"
)

// rewriteBlock rewrites every if/else-if/else chain in stmts whose condition
// touches param, recursing into nested blocks and branch bodies first so
// inner chains are converted before the outer one is assembled.
func rewriteBlock(stmts []ast.Stmt, param string, paramType ast.Expr) []ast.Stmt {
	out := make([]ast.Stmt, 0, len(stmts))
	for _, s := range stmts {
		switch v := s.(type) {
		case *ast.IfStmt:
			if v.Init == nil && hasModuleAccess(v.Cond, param) {
				out = append(out, buildIfChain(v, param, paramType)...)
				continue
			}
			rewriteNestedBlocks(v, param, paramType)
			out = append(out, v)
		case *ast.BlockStmt:
			v.List = rewriteBlock(v.List, param, paramType)
			out = append(out, v)
		default:
			out = append(out, s)
		}
	}
	return out
}

// rewriteNestedBlocks descends into an untagged if-statement's branches,
// converting any tagged chains nested inside them.
func rewriteNestedBlocks(v *ast.IfStmt, param string, paramType ast.Expr) {
	v.Body.List = rewriteBlock(v.Body.List, param, paramType)
	switch e := v.Else.(type) {
	case *ast.BlockStmt:
		e.List = rewriteBlock(e.List, param, paramType)
	case *ast.IfStmt:
		if hasModuleAccess(e.Cond, param) {
			// An else-if chain entered from an untagged if: treat its own
			// tail as a fresh chain head so it still converts.
			chain := buildIfChain(e, param, paramType)
			if len(chain) == 1 {
				v.Else = chain[0]
			} else {
				v.Else = &ast.BlockStmt{List: chain}
			}
		} else {
			rewriteNestedBlocks(e, param, paramType)
		}
	}
}

// hasModuleAccess reports whether e contains a selector or identifier
// rooted at param anywhere in its subtree (spec.md §4.5's "at least one
// data-member access anywhere in the condition" rule).
func hasModuleAccess(e ast.Expr, param string) bool {
	found := false
	ast.Inspect(e, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok && id.Name == param {
			found = true
			return false
		}
		return true
	})
	return found
}

// buildIfChain converts a tagged if/else-if/else ladder rooted at head into
// a sequence of `if err := b.If/Elif/Else(...); err != nil { return err }`
// statements.
func buildIfChain(head *ast.IfStmt, param string, paramType ast.Expr) []ast.Stmt {
	var stmts []ast.Stmt
	stmts = append(stmts, callStmt(param, "If", head.Cond, head.Body, param, paramType))

	cur := head.Else
	for cur != nil {
		switch v := cur.(type) {
		case *ast.IfStmt:
			stmts = append(stmts, callStmt(param, "Elif", v.Cond, v.Body, param, paramType))
			cur = v.Else
		case *ast.BlockStmt:
			stmts = append(stmts, callStmt(param, "Else", nil, v, param, paramType))
			cur = nil
		default:
			cur = nil
		}
	}
	return stmts
}

// callStmt builds `if err := recv.method(cond, func(param paramType) error {
// body; return nil }); err != nil { return err }`. cond is omitted (and the
// funclit takes no cond arg) when method == "Else".
func callStmt(recv, method string, cond ast.Expr, body *ast.BlockStmt, param string, paramType ast.Expr) ast.Stmt {
	innerBody := &ast.BlockStmt{List: rewriteBlock(body.List, param, paramType)}
	for i, s := range innerBody.List {
		innerBody.List[i] = rewriteStmtBools(s, param)
	}
	if !endsInReturn(innerBody.List) {
		innerBody.List = append(innerBody.List, &ast.ReturnStmt{Results: []ast.Expr{ast.NewIdent("nil")}})
	}

	funcLit := &ast.FuncLit{
		Type: &ast.FuncType{
			Params: &ast.FieldList{List: []*ast.Field{
				{Names: []*ast.Ident{ast.NewIdent(param)}, Type: cloneExpr(paramType)},
			}},
			Results: &ast.FieldList{List: []*ast.Field{{Type: ast.NewIdent("error")}}},
		},
		Body: innerBody,
	}

	var args []ast.Expr
	if cond != nil {
		args = append(args, rewriteBoolExpr(cond, param))
	}
	args = append(args, funcLit)

	call := &ast.CallExpr{
		Fun:  &ast.SelectorExpr{X: ast.NewIdent(recv), Sel: ast.NewIdent(method)},
		Args: args,
	}

	return &ast.IfStmt{
		Init: &ast.AssignStmt{
			Lhs: []ast.Expr{ast.NewIdent("err")},
			Tok: token.DEFINE,
			Rhs: []ast.Expr{call},
		},
		Cond: &ast.BinaryExpr{X: ast.NewIdent("err"), Op: token.NEQ, Y: ast.NewIdent("nil")},
		Body: &ast.BlockStmt{List: []ast.Stmt{
			&ast.ReturnStmt{Results: []ast.Expr{ast.NewIdent("err")}},
		}},
	}
}

func endsInReturn(stmts []ast.Stmt) bool {
	if len(stmts) == 0 {
		return false
	}
	_, ok := stmts[len(stmts)-1].(*ast.ReturnStmt)
	return ok
}

// rewriteStmtBools rewrites &&/||/! inside the boolean sub-expressions of a
// statement (if conditions, return values, assignments), leaving everything
// else untouched. It does not recurse into nested if-chains, which
// rewriteBlock has already normalized into method calls by the time this
// runs.
func rewriteStmtBools(s ast.Stmt, param string) ast.Stmt {
	switch v := s.(type) {
	case *ast.IfStmt:
		v.Cond = rewriteBoolExpr(v.Cond, param)
		return v
	case *ast.ReturnStmt:
		for i, r := range v.Results {
			v.Results[i] = rewriteBoolExpr(r, param)
		}
		return v
	case *ast.ExprStmt:
		v.X = rewriteBoolExpr(v.X, param)
		return v
	default:
		return s
	}
}

// rewriteBoolExpr rewrites `&&`/`||` whose operands touch param into
// builder.And/builder.Or calls (flattening associative chains the way the
// teacher's expression builder flattens n-ary sums), and unary `!` on a
// hardware-valued operand into builder.Not. Expressions that never touch
// param are returned unchanged (spec.md §4.5: "plain host booleans
// untouched"). The traversal itself runs through astutil.Apply: its Cursor
// lets a chain's own BinaryExpr nodes be collapsed via flattenAssoc without
// also being visited (and re-wrapped one level at a time) by the default
// walk.
func rewriteBoolExpr(e ast.Expr, param string) ast.Expr {
	if !hasModuleAccess(e, param) {
		return e
	}
	result := astutil.Apply(e, func(c *astutil.Cursor) bool {
		switch v := c.Node().(type) {
		case *ast.ParenExpr:
			c.Replace(rewriteBoolExpr(v.X, param))
			return false
		case *ast.BinaryExpr:
			if v.Op != token.LAND && v.Op != token.LOR {
				return true
			}
			name := "And"
			if v.Op == token.LOR {
				name = "Or"
			}
			c.Replace(&ast.CallExpr{
				Fun:  &ast.SelectorExpr{X: ast.NewIdent("builder"), Sel: ast.NewIdent(name)},
				Args: flattenAssoc(v, v.Op, param),
			})
			return false
		case *ast.UnaryExpr:
			if v.Op != token.NOT {
				return true
			}
			c.Replace(&ast.CallExpr{
				Fun:  &ast.SelectorExpr{X: ast.NewIdent("builder"), Sel: ast.NewIdent("Not")},
				Args: []ast.Expr{rewriteBoolExpr(v.X, param)},
			})
			return false
		default:
			return true
		}
	}, nil)
	return result.(ast.Expr)
}

// flattenAssoc collects the operands of a chain of same-operator binary
// expressions (a && b && c -> [a, b, c]), rewriting each leaf in turn.
func flattenAssoc(e ast.Expr, op token.Token, param string) []ast.Expr {
	if paren, ok := e.(*ast.ParenExpr); ok {
		return flattenAssoc(paren.X, op, param)
	}
	bin, ok := e.(*ast.BinaryExpr)
	if !ok || bin.Op != op {
		return []ast.Expr{rewriteBoolExpr(e, param)}
	}
	left := flattenAssoc(bin.X, op, param)
	right := flattenAssoc(bin.Y, op, param)
	return append(left, right...)
}

// cloneExpr deep-copies the limited set of expression shapes moduleParam can
// return (*Ident, *StarExpr over Ident/SelectorExpr), so each synthesized
// FuncLit gets its own type node rather than aliasing the original.
func cloneExpr(e ast.Expr) ast.Expr {
	switch v := e.(type) {
	case *ast.Ident:
		return ast.NewIdent(v.Name)
	case *ast.StarExpr:
		return &ast.StarExpr{X: cloneExpr(v.X)}
	case *ast.SelectorExpr:
		return &ast.SelectorExpr{X: cloneExpr(v.X), Sel: ast.NewIdent(v.Sel.Name)}
	default:
		return e
	}
}

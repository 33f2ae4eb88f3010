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
package firrtl

import (
	"fmt"
	"strings"

	"github.com/telemarkguru/hamp/pkg/ir"
)

// renderStmts renders stmts at the given indent level (4 spaces per level,
// spec.md §4.7).
func renderStmts(b *strings.Builder, stmts []ir.Stmt, indent int) {
	pad := strings.Repeat("    ", indent)
	for _, s := range stmts {
		switch v := s.(type) {
		case ir.Connect:
			fmt.Fprintf(b, "%s%s <= %s\n", pad, renderExpr(v.LHS), renderExpr(v.RHS))
		case ir.When:
			fmt.Fprintf(b, "%swhen %s :\n", pad, renderExpr(v.Cond))
			renderStmts(b, v.Body, indent+1)
		case ir.ElseWhen:
			fmt.Fprintf(b, "%selse when %s :\n", pad, renderExpr(v.Cond))
			renderStmts(b, v.Body, indent+1)
		case ir.Else:
			fmt.Fprintf(b, "%selse :\n", pad)
			renderStmts(b, v.Body, indent+1)
		case ir.Printf:
			fmt.Fprintf(b, "%sprintf(%s, %s, %s) : printf\n", pad, renderExpr(v.Clock), renderExpr(v.Enable), renderFormat(v.Format, v.Args))
		case ir.Assertf:
			fmt.Fprintf(b, "%sassert(%s, %s, %s, %s) : assert\n", pad, renderExpr(v.Clock), renderExpr(v.Pred), renderExpr(v.Enable), renderFormat(v.Format, v.Args))
		case ir.Coverf:
			fmt.Fprintf(b, "%scover(%s, %s, %s, %s) : cover\n", pad, renderExpr(v.Clock), renderExpr(v.Pred), renderExpr(v.Enable), renderFormat(v.Format, nil))
		}
	}
}

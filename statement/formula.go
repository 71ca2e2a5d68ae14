/*
formula.go - Line-reference formula evaluator

PURPOSE:
  Evaluates the minimal arithmetic language used by subtotal and total
  lines: a sequence of signed line references joined by + and -, e.g.
  "L10 + L20 - L30". No precedence, no parentheses, no multiplication.

TOLERANCE, NOT ERRORS:
  An empty formula, an unparseable token, or a reference to a line that
  has not been computed all contribute 0 - absence of a valid token is a
  deliberate neutral value, not a fault. This tolerates forward and
  unknown references silently; render_test.go pins that behavior so a
  future "improvement" to strict resolution cannot land unnoticed.

SEE ALSO:
  - render.go: Builds the line-amount map the evaluator reads
*/
package statement

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/warp/finance-engine/fincore"
)

// =============================================================================
// FORMULA EVALUATOR
// =============================================================================

// refPattern matches one signed line reference after whitespace stripping:
// an optional + or - followed by L and a line number.
var refPattern = regexp.MustCompile(`([+-]?)L(\d+)`)

// Evaluate computes a formula against the line amounts computed so far.
// References to line numbers absent from lineAmounts read 0.
func Evaluate(formula string, lineAmounts map[int]int64) fincore.Result[int64] {
	stripped := strings.ReplaceAll(formula, " ", "")
	stripped = strings.ReplaceAll(stripped, "\t", "")

	var (
		total    int64
		resolved []string
	)
	for _, m := range refPattern.FindAllStringSubmatch(stripped, -1) {
		lineNo, err := strconv.Atoi(m[2])
		if err != nil {
			// \d+ can still overflow int; treat like an unknown reference.
			continue
		}
		amount := lineAmounts[lineNo] // missing key reads 0
		if m[1] == "-" {
			total -= amount
		} else {
			total += amount
		}
		resolved = append(resolved, fmt.Sprintf("%sL%d=%d", signPrefix(m[1]), lineNo, amount))
	}

	explanation := "empty formula, result 0"
	if len(resolved) > 0 {
		explanation = fmt.Sprintf("%s -> %s = %d", formula, strings.Join(resolved, " "), total)
	}

	return fincore.NewResult(total, formulaInputs{Formula: formula, LineAmounts: lineAmounts}, explanation)
}

type formulaInputs struct {
	Formula     string        `json:"formula"`
	LineAmounts map[int]int64 `json:"line_amounts"`
}

func signPrefix(s string) string {
	if s == "" {
		return "+"
	}
	return s
}

package simplex

import (
	"fmt"
	"sort"

	"github.com/norkamer/caps/lpmodel"
	"github.com/shopspring/decimal"
)

// colKind tags what a tableau column represents, for extracting the final
// variable assignment and for building the initial cost row.
type colKind int

const (
	colOriginal colKind = iota
	colSlack
	colSurplus
	colArtificial
)

type column struct {
	kind     colKind
	variable string // original variable_id; empty for slack/surplus/artificial
}

// tableau is the Phase-1 working array: rows 0..m-1 are constraint rows,
// and the cost row is held separately in costRow (z_j - c_j per column,
// with the RHS slot holding the current Phase-1 objective value). basis[i]
// names the column currently basic in row i. This mirrors the teacher's
// matrix Gaussian-elimination pivot loop shape (select pivot, normalize,
// eliminate), restated over decimal.Decimal.
type tableau struct {
	rows    [][]decimal.Decimal // rows[i][j], j in [0, numCols), plus RHS appended at index numCols
	basis   []int
	cols    []column
	costRow []decimal.Decimal // z_j - c_j per column, RHS slot holds current objective value
}

// coldTableau builds the standard Phase-1 tableau for lp: every constraint
// is normalized to a non-negative RHS (multiplying by -1 and flipping LE/GE
// if necessary), then given a slack (LE), surplus+artificial (GE), or
// artificial (EQ) column.
func coldTableau(lp *lpmodel.LinearProgram) (*tableau, error) {
	varIDs := make([]string, 0, len(lp.Variables))
	for id := range lp.Variables {
		varIDs = append(varIDs, id)
	}
	sort.Strings(varIDs)

	cols := make([]column, len(varIDs))
	colIndex := make(map[string]int, len(varIDs))
	for i, id := range varIDs {
		cols[i] = column{kind: colOriginal, variable: id}
		colIndex[id] = i
	}

	m := len(lp.Constraints)
	rows := make([][]decimal.Decimal, m)
	basis := make([]int, m)

	for i, c := range lp.Constraints {
		rhs := c.RHS
		typ := c.Type
		coeffs := c.Coefficients
		if rhs.IsNegative() {
			rhs = rhs.Neg()
			coeffs = negateCoeffs(coeffs)
			typ = flip(typ)
		}

		row := make([]decimal.Decimal, len(varIDs))
		for i := range row {
			row[i] = decimal.Zero
		}
		for varID, coeff := range coeffs {
			idx, ok := colIndex[varID]
			if !ok {
				return nil, fmt.Errorf("simplex: constraint %q: %w: %q", c.Name, ErrUndefinedVariable, varID)
			}
			row[idx] = coeff
		}

		switch typ {
		case lpmodel.LE:
			slackCol := len(cols)
			cols = append(cols, column{kind: colSlack})
			row = appendZeros(row, len(cols)-len(row))
			row[slackCol] = decimal.NewFromInt(1)
			basis[i] = slackCol

		case lpmodel.GE:
			surplusCol := len(cols)
			cols = append(cols, column{kind: colSurplus})
			row = appendZeros(row, len(cols)-len(row))
			row[surplusCol] = decimal.NewFromInt(-1)

			artCol := len(cols)
			cols = append(cols, column{kind: colArtificial})
			row = appendZeros(row, len(cols)-len(row))
			row[artCol] = decimal.NewFromInt(1)
			basis[i] = artCol

		case lpmodel.EQ:
			artCol := len(cols)
			cols = append(cols, column{kind: colArtificial})
			row = appendZeros(row, len(cols)-len(row))
			row[artCol] = decimal.NewFromInt(1)
			basis[i] = artCol
		}

		row = append(row, rhs)
		rows[i] = row
	}

	// Every row must have the same final width; pad earlier rows (built
	// before later rows introduced more slack/surplus/artificial columns)
	// with zeros, preserving the RHS as the true last element.
	width := len(cols)
	for i, row := range rows {
		rhs := row[len(row)-1]
		body := row[:len(row)-1]
		if len(body) < width {
			padded := make([]decimal.Decimal, width)
			copy(padded, body)
			for j := len(body); j < width; j++ {
				padded[j] = decimal.Zero
			}
			body = padded
		}
		rows[i] = append(body, rhs)
	}

	t := &tableau{rows: rows, basis: basis, cols: cols}
	t.rebuildCostRow()
	return t, nil
}

func negateCoeffs(in map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(in))
	for k, v := range in {
		out[k] = v.Neg()
	}
	return out
}

func flip(t lpmodel.ConstraintType) lpmodel.ConstraintType {
	switch t {
	case lpmodel.LE:
		return lpmodel.GE
	case lpmodel.GE:
		return lpmodel.LE
	default:
		return t // EQ is self-symmetric under negation
	}
}

func appendZeros(row []decimal.Decimal, n int) []decimal.Decimal {
	for i := 0; i < n; i++ {
		row = append(row, decimal.Zero)
	}
	return row
}

// rebuildCostRow recomputes the z_j - c_j row from the current basis,
// where c_j = 1 for artificial columns (the Phase-1 objective: minimize
// the sum of artificials) and 0 for every other column.
func (t *tableau) rebuildCostRow() {
	numCols := len(t.cols)
	cost := make([]decimal.Decimal, numCols+1)
	for j := 0; j <= numCols; j++ {
		cost[j] = decimal.Zero
	}

	for i, basicCol := range t.basis {
		cB := t.costOf(basicCol)
		if cB.IsZero() {
			continue
		}
		for j := 0; j <= numCols; j++ {
			cost[j] = cost[j].Add(cB.Mul(t.rows[i][j]))
		}
	}
	for j := 0; j < numCols; j++ {
		cost[j] = cost[j].Sub(t.costOf(j))
	}

	t.costRow = cost
}

func (t *tableau) costOf(col int) decimal.Decimal {
	if col < len(t.cols) && t.cols[col].kind == colArtificial {
		return decimal.NewFromInt(1)
	}
	return decimal.Zero
}

// objectiveValue is the current sum of basic artificial values, i.e. the
// Phase-1 objective (what we are driving to zero).
func (t *tableau) objectiveValue() decimal.Decimal {
	sum := decimal.Zero
	rhsCol := len(t.cols)
	for i, basicCol := range t.basis {
		if basicCol < len(t.cols) && t.cols[basicCol].kind == colArtificial {
			sum = sum.Add(t.rows[i][rhsCol])
		}
	}
	return sum
}

package equivalence

import (
	"github.com/nonsonwune/rankmatch/models"
	"github.com/nonsonwune/rankmatch/rankdata"
)

// Cell is the outcome of one method against one target year. Exactly one of
// Result and Err is meaningful.
type Cell struct {
	TargetYear int
	Method     Method
	Result     Result
	Err        error
}

// OK reports whether the cell holds a result.
func (c Cell) OK() bool { return c.Err == nil }

// Row holds every mapping of one source score.
type Row struct {
	SourceYear  int
	SourceScore int
	SourceRank  int
	Cells       []Cell
}

// Cell returns the cell of targetYear and method.
func (r Row) Cell(targetYear int, method Method) (Cell, bool) {
	for _, c := range r.Cells {
		if c.TargetYear == targetYear && c.Method == method {
			return c, true
		}
	}

	return Cell{}, false
}

// Report maps score from sourceYear into every target year with both methods.
// It fails only when the source score itself cannot be resolved; failures of
// single mappings are kept in their cells.
func Report(t *rankdata.Tables, track models.Track, sourceYear, score int, targetYears []int) (Row, error) {
	rank, err := t.Rank(sourceYear, score)
	if err != nil {
		return Row{}, err
	}

	row := Row{
		SourceYear:  sourceYear,
		SourceScore: score,
		SourceRank:  rank,
		Cells:       make([]Cell, 0, len(targetYears)*len(Methods)),
	}
	for _, year := range targetYears {
		for _, m := range Methods {
			res, err := Equivalent(t, m, track, sourceYear, score, year)
			row.Cells = append(row.Cells, Cell{TargetYear: year, Method: m, Result: res, Err: err})
		}
	}

	return row, nil
}

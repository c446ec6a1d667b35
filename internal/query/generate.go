package query

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Source is the read-side contract the generator needs from a loaded
// table. Values returns the distinct non-empty cells of a column in
// first-seen order; RestrictedValues narrows that to rows where mainColumn
// holds mainValue.
type Source interface {
	Columns() []string
	Values(column string) []string
	RestrictedValues(column, mainColumn, mainValue string) []string
}

// Generator drives assembly over a Source according to a Plan. It is a
// pure function of its immutable inputs: the same table, config, and mode
// always produce the same Result.
type Generator struct {
	src  Source
	plan Plan
}

// NewGenerator validates the plan against its own column list and returns
// a ready Generator. Validation failures are PlanErrors and must abort the
// run before any assembly happens.
func NewGenerator(src Source, plan Plan) (*Generator, error) {
	if len(plan.Columns) == 0 {
		return nil, &PlanError{Reason: "no columns"}
	}
	for _, col := range plan.Columns {
		if _, ok := plan.Config[col]; !ok {
			return nil, &PlanError{Reason: fmt.Sprintf("column %q has no settings", col)}
		}
	}
	if plan.MainColumn != "" {
		found := false
		for _, col := range plan.Columns {
			if col == plan.MainColumn {
				found = true
				break
			}
		}
		if !found {
			return nil, &PlanError{Reason: fmt.Sprintf("main column %q is not a table column", plan.MainColumn)}
		}
	}
	return &Generator{src: src, plan: plan}, nil
}

// Run generates queries in the mode the plan selects. In combined mode an
// unassemblable query is fatal; in grouped mode per-label failures are
// collected in the Result and the run continues.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	if g.plan.MainColumn == "" {
		return g.runCombined()
	}
	return g.runGrouped(ctx)
}

// runCombined builds one Group per column over the entire table and emits
// a single unlabeled query.
func (g *Generator) runCombined() (*Result, error) {
	groups := make([]Group, 0, len(g.plan.Columns))
	for _, col := range g.plan.Columns {
		groups = append(groups, g.newGroup(col, g.src.Values(col)))
	}

	q, err := Assemble(groups, g.plan.Inter)
	if err != nil {
		return nil, err
	}

	gq := GeneratedQuery{Query: q}
	gq.GroupCount, gq.TermCount = countGroups(groups)
	return &Result{Queries: []GeneratedQuery{gq}}, nil
}

// runGrouped emits one query per distinct main-column value, in first-seen
// order. Labels are generated concurrently, but each goroutine writes only
// its own slot of an index-addressed slice, so output order is positional
// and never depends on completion order. The main value is the label only:
// assembly runs over the other columns, each restricted to the union of
// values co-occurring in rows that share the label. A label whose rows
// leave every other column empty fails with ErrEmptyQuery, recorded and
// skipped without touching the remaining labels.
func (g *Generator) runGrouped(ctx context.Context) (*Result, error) {
	labels := g.src.Values(g.plan.MainColumn)
	if len(labels) == 0 {
		return nil, fmt.Errorf("main column %q has no values: %w", g.plan.MainColumn, ErrEmptyQuery)
	}

	type outcome struct {
		query GeneratedQuery
		err   error
	}
	outcomes := make([]outcome, len(labels))

	eg, gctx := errgroup.WithContext(ctx)
	for i, label := range labels {
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			groups := make([]Group, 0, len(g.plan.Columns))
			for _, col := range g.plan.Columns {
				if col == g.plan.MainColumn {
					continue
				}
				groups = append(groups, g.newGroup(col, g.src.RestrictedValues(col, g.plan.MainColumn, label)))
			}

			q, err := Assemble(groups, g.plan.Inter)
			if err != nil {
				outcomes[i] = outcome{err: err}
				return nil
			}

			gq := GeneratedQuery{Label: label, Query: q}
			gq.GroupCount, gq.TermCount = countGroups(groups)
			outcomes[i] = outcome{query: gq}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	res := &Result{}
	for i, o := range outcomes {
		if o.err != nil {
			res.Failures = append(res.Failures, LabelFailure{Label: labels[i], Err: o.err})
			continue
		}
		res.Queries = append(res.Queries, o.query)
	}
	return res, nil
}

func (g *Generator) newGroup(col string, terms []string) Group {
	s := g.plan.Config[col]
	return Group{Name: col, Terms: terms, Quote: s.Quote, Intra: s.Intra}
}

// countGroups reports how many groups carried terms into a query and the
// total number of terms across them.
func countGroups(groups []Group) (groupCount, termCount int) {
	for _, g := range groups {
		if len(g.Terms) == 0 {
			continue
		}
		groupCount++
		termCount += len(g.Terms)
	}
	return groupCount, termCount
}

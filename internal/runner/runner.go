// Package runner executes the emp/dept queries in order and prints their results line by line.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/locvowork/employee_queries/internal/domain"
	"github.com/locvowork/employee_queries/internal/logger"
	"github.com/locvowork/employee_queries/internal/service"
	"github.com/locvowork/employee_queries/pkg/dataflow"
)

// Runner prints every query result to an output stream.
type Runner struct {
	svc *service.QueryService
	out io.Writer
}

// New creates a Runner writing to out.
func New(svc *service.QueryService, out io.Writer) *Runner {
	return &Runner{svc: svc, out: out}
}

type step struct {
	def service.QueryDefinition
	run func(ctx context.Context) error
}

func (r *Runner) steps() []step {
	handlers := map[string]func(context.Context) error{
		service.QueryDistinctJobs:      r.distinctJobs,
		service.QueryCommissioned:      r.commissioned,
		service.QueryDistinctJobCount:  r.distinctJobCount,
		service.QuerySalaryStats:       r.salaryStats,
		service.QuerySalaryStatsByDept: r.salaryStatsByDept,
		service.QueryHighestPaid:       r.highestPaid,
		service.QueryHighestPaidByDept: r.highestPaidByDept,
		service.QueryEmployeeLocations: r.employeeLocations,
	}

	catalog := service.Catalog()
	steps := make([]step, 0, len(catalog))
	for _, def := range catalog {
		steps = append(steps, step{def: def, run: handlers[def.ID]})
	}
	return steps
}

// Run executes every query in catalog order. A failing query is logged and
// does not stop the ones after it; the failures are returned joined.
// An absent result (domain.ErrEmptyCollection) prints nothing and is not a failure.
func (r *Runner) Run(ctx context.Context) error {
	var errs []error
	for _, s := range r.steps() {
		qctx := logger.WithLogger(ctx, map[string]interface{}{"query": s.def.ID})
		logger.DebugLog(qctx, "running %q: %s", s.def.Title, s.def.SQL)

		err := s.run(qctx)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrEmptyCollection):
			logger.WarnLog(qctx, "no result for %q: %v", s.def.Title, err)
		default:
			logger.ErrorLog(qctx, "query failed: %v", err)
			errs = append(errs, fmt.Errorf("%s: %w", s.def.ID, err))
		}
	}
	return errors.Join(errs...)
}

func (r *Runner) println(line string) error {
	_, err := fmt.Fprintln(r.out, line)
	return err
}

func (r *Runner) distinctJobs(ctx context.Context) error {
	jobs, err := r.svc.DistinctJobs(ctx)
	if err != nil {
		return err
	}
	return dataflow.ForEach(dataflow.From(jobs), r.println)
}

func (r *Runner) commissioned(ctx context.Context) error {
	ids, err := r.svc.EmployeesWithCommission(ctx)
	if err != nil {
		return err
	}
	return dataflow.ForEach(dataflow.Map(dataflow.From(ids), strconv.Itoa), r.println)
}

func (r *Runner) distinctJobCount(ctx context.Context) error {
	n, err := r.svc.DistinctJobCount(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		// nothing to count on an empty collection
		return nil
	}
	return r.println(formatDistinctJobCount(n))
}

func (r *Runner) salaryStats(ctx context.Context) error {
	stats, err := r.svc.SalaryStats(ctx)
	if err != nil {
		return err
	}
	return r.println(formatSalaryStats(stats))
}

func (r *Runner) salaryStatsByDept(ctx context.Context) error {
	byDept, err := r.svc.SalaryStatsByDept(ctx)
	if err != nil {
		return err
	}
	return dataflow.ForEach(dataflow.Map(dataflow.From(byDept), formatDeptSalaryStats), r.println)
}

func (r *Runner) highestPaid(ctx context.Context) error {
	best, err := r.svc.HighestPaid(ctx)
	if err != nil {
		return err
	}
	return r.println(formatHighestPaid(best))
}

func (r *Runner) highestPaidByDept(ctx context.Context) error {
	top, err := r.svc.HighestPaidByDept(ctx)
	if err != nil {
		return err
	}
	return dataflow.ForEach(dataflow.Map(dataflow.From(top), formatDeptTopEarner), r.println)
}

func (r *Runner) employeeLocations(ctx context.Context) error {
	locs, err := r.svc.EmployeeLocations(ctx)
	if err != nil {
		return err
	}
	return dataflow.ForEach(dataflow.Map(dataflow.From(locs), formatEmployeeLocation), r.println)
}

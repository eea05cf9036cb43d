package iomodel

import (
	"context"
	"fmt"
	"sync"

	"github.com/econlab/gaming_impact/internal/iomodel/types"
	"github.com/econlab/gaming_impact/internal/logger"
)

type StateJob struct {
	Tables *types.RawStateTables
}

type StateResult struct {
	State       string
	Multipliers *StateMultipliers
	Warnings    []string
	Err         error
}

// Orchestrator runs the offline derivation, one job per state. States are
// independent, so jobs fan out over a bounded worker pool; a failing state
// is reported in its result and never aborts the run.
type Orchestrator struct {
	appLogger *logger.Logger

	maxConcurrency int

	wg         sync.WaitGroup
	jobChan    chan StateJob
	resultChan chan StateResult
}

func NewOrchestrator(appLogger *logger.Logger, concurrency int) *Orchestrator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Orchestrator{
		appLogger:      appLogger,
		maxConcurrency: concurrency,
		jobChan:        make(chan StateJob, 100),
		resultChan:     make(chan StateResult, 100),
	}
}

// Run derives multipliers for every state and returns one result per state,
// in completion order.
func (o *Orchestrator) Run(ctx context.Context, states []*types.RawStateTables) []StateResult {
	const component = "Orchestrator"
	o.appLogger.Info(component, "Starting multiplier batch: states=%d concurrency=%d", len(states), o.maxConcurrency)

	for w := 0; w < o.maxConcurrency; w++ {
		o.wg.Add(1)
		go o.worker(ctx, w)
	}

	go func() {
		defer close(o.jobChan)
		for _, st := range states {
			select {
			case o.jobChan <- StateJob{Tables: st}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		o.wg.Wait()
		close(o.resultChan)
	}()

	results := make([]StateResult, 0, len(states))
	for res := range o.resultChan {
		if res.Err != nil {
			o.appLogger.Error(component, "State skipped: state=%s err=%v", res.State, res.Err)
		} else {
			o.appLogger.Info(component, "State computed: state=%s sectors=%d warnings=%d", res.State, len(res.Multipliers.Sectors), len(res.Warnings))
		}
		for _, w := range res.Warnings {
			o.appLogger.Warn(component, "Validation: %s", w)
		}
		results = append(results, res)
	}

	o.appLogger.Info(component, "Multiplier batch finished: results=%d", len(results))
	return results
}

func (o *Orchestrator) worker(ctx context.Context, id int) {
	defer o.wg.Done()
	for job := range o.jobChan {
		select {
		case <-ctx.Done():
			return
		default:
		}
		o.resultChan <- o.computeState(job.Tables)
	}
}

func (o *Orchestrator) computeState(tables *types.RawStateTables) (res StateResult) {
	res.State = tables.State

	// Inversion of a badly conditioned table must not take the batch down.
	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("panic while computing %s: %v", tables.State, r)
		}
	}()

	snapshot, err := Align(tables)
	if err != nil {
		res.Err = err
		return res
	}

	model, err := BuildModel(snapshot)
	if err != nil {
		res.Err = err
		return res
	}

	coeffs := DeriveCoefficients(model)

	multipliers, warnings, err := ComputeMultipliers(model, coeffs)
	if err != nil {
		res.Err = err
		return res
	}

	res.Multipliers = multipliers
	res.Warnings = warnings
	return res
}

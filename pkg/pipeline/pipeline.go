// Package pipeline provides a generic pipeline of named, typed processing
// stages. Each stage may fail; the first error stops the pipeline.
package pipeline

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Stage represents a processing stage in the pipeline.
type Stage[In, Out any] func(In) (Out, error)

// Observer is called after each stage with the stage name and its output.
type Observer func(stage string, output any)

type step struct {
	name string
	run  func(any) (any, error)
}

// Pipeline represents a series of processing stages producing a T.
type Pipeline[T any] struct {
	steps []step
}

// New creates a new pipeline starting with an initial stage.
func New[In, Out any](name string, stage Stage[In, Out]) *Pipeline[Out] {
	return &Pipeline[Out]{
		steps: []step{{name: name, run: func(input any) (any, error) {
			return stage(input.(In))
		}}},
	}
}

// Then adds a new stage to the pipeline. p itself is left unchanged.
func Then[Out, Next any](p *Pipeline[Out], name string, stage Stage[Out, Next]) *Pipeline[Next] {
	steps := make([]step, len(p.steps), len(p.steps)+1)
	copy(steps, p.steps)
	steps = append(steps, step{name: name, run: func(input any) (any, error) {
		return stage(input.(Out))
	}})
	return &Pipeline[Next]{steps: steps}
}

// Stages returns the stage names in execution order.
func (p *Pipeline[T]) Stages() []string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.name
	}
	return names
}

// Execute runs the pipeline with the given input. Errors are prefixed with
// the name of the failing stage.
func Execute[In, Out any](p *Pipeline[Out], input In, observers ...Observer) (Out, error) {
	var current any = input
	var err error

	for _, s := range p.steps {
		current, err = s.run(current)
		if err != nil {
			var zero Out
			return zero, fmt.Errorf("%s: %w", s.name, err)
		}
		for _, observe := range observers {
			observe(s.name, current)
		}
	}

	return current.(Out), nil
}

// Parallel executes a stage on multiple inputs concurrently, running at most
// limit stages at a time (GOMAXPROCS when limit is not positive). Results and
// errors are positional.
func Parallel[In, Out any](stage Stage[In, Out], inputs []In, limit int) ([]Out, []error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]Out, len(inputs))
	errs := make([]error, len(inputs))

	var g errgroup.Group
	g.SetLimit(limit)
	for i, input := range inputs {
		g.Go(func() error {
			results[i], errs[i] = stage(input)
			return nil
		})
	}
	_ = g.Wait()

	return results, errs
}

// Map creates a stage that transforms each element in a slice.
func Map[In, Out any](transform func(In) Out) Stage[[]In, []Out] {
	return func(items []In) ([]Out, error) {
		result := make([]Out, len(items))
		for i, item := range items {
			result[i] = transform(item)
		}
		return result, nil
	}
}

// Apply creates a stage from a whole-slice transformation that cannot fail.
func Apply[T any](transform func([]T) []T) Stage[[]T, []T] {
	return func(items []T) ([]T, error) {
		return transform(items), nil
	}
}

// Package builder produces deterministic fixture containers for tests,
// benchmarks and demos.
//
// Constructors:
//
//	Identity, Constant             any core.Number element type
//	Sequential, SequentialVector   start, start+step, ... in row-major order
//	Random, RandomVector           values drawn from a ValueFn
//	RandomLower, RandomUpper       triangles with drawn stored entries
//
// Configuration flows through functional options (BuilderOption):
//
//	WithSeed, WithRand             RNG for Random*; required (ErrNeedRandSource)
//	WithRange, WithValueFn, ...    element generator (default integers -9..9)
//	WithStart, WithStep            progression for Sequential* (default 1, 1)
//	WithMaxSize                    size limit forwarded to the containers
//
// Option constructors panic on meaningless values; builders return errors.
// The same inputs, options and seed always yield identical containers.
package builder

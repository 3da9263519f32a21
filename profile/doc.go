// Package profile provides optional runtime profiling for the dsys command.
//
// Profiling is built on [github.com/pkg/profile] and compiled in only with the
// "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag every [Profiler] is a no-op and [Modes] is empty.
//
// # Modes
//
// allocs, block, clock, cpu, goroutine, heap, mem, mutex, thread and trace.
// Each writes <mode>.pprof (or trace.out) into the profiler's Path.
//
//	p := profile.New(profile.WithMode("cpu"), profile.WithPath("/tmp/prof"))
//	defer p.Start().Stop()
//
// From the command line:
//
//	dsys --pprof-mode cpu fmt native big.ds
//	go tool pprof -http=: ~/.cache/dsys/pprof/cpu.pprof
//
// The pprof build also imports [net/http/pprof], so a program that serves
// [net/http.DefaultServeMux] exposes /debug/pprof/ as well.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`

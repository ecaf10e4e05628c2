// Package statsview is an optional package that will be built only when the
// statsview build constraint is present.
//
// It provides an HTTP server running locally offering runtime statistics of
// the program. The underlying functionality is provided by
// "github.com/go-echarts/statsview".
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12601/debug/statsview
//
// And standard Go pprof statistics are available at:
//
//	localhost:12601/debug/pprof/
package statsview

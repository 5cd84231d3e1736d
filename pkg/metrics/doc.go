/*
Package metrics provides Prometheus instrumentation for gobag
components.

Components are never instrumented inline; metrics-aware variants (such
as taskqueue.NewWithMetrics) decorate the plain implementation and
record into a Registry. The DefaultRegistry registers against the
global Prometheus registerer; pass a custom registerer through Config
to isolate metrics per component or per test.
*/
package metrics

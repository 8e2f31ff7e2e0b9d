// Package trace provides ready-made lll.Observer implementations.
//
//   - Logger writes one structured zerolog event per reduction event, at a
//     configurable level (debug by default), so a run can be replayed line by
//     line the way the old console trace could.
//   - Metrics counts events into Prometheus collectors registered on a caller
//     supplied prometheus.Registerer.
//
// Both are plain observers: attach them with lll.WithObserver.
package trace

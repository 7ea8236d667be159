// Package domain contains the core model for miloPlot: trajectory files,
// the merged variable catalog, axis labels, plot requests and figure layouts.
//
// The domain does not touch the filesystem, the terminal or a rendering
// backend. Infra adapters map into/from these types.
package domain

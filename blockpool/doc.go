// Package blockpool provides Pool, a fixed-count pool of fixed-size byte
// blocks backed by a single allocation made at construction. Blocks are
// acquired first-fit (lowest free index first), giving deterministic index
// sequences, and are zeroed on release so acquired blocks always start
// blank. Diagnostics include a streaming JSON state dump, statistics
// aggregation, and an slog-based block walk.
package blockpool

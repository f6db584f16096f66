// Package housing transforms a wide-format housing-price index (one row per
// region, one column per calendar month) into a clean long-format table and
// derives filtered, region-coded, and year-over-year views from it.
//
// The pipeline is a chain of pure functions over immutable tables:
//
//	raw CSV -> Load -> AddRegionCodes? -> Filter -> AddYoYChange -> reports
//
// Each stage returns a new Table and leaves its input unchanged. The only
// I/O boundary is LoadFile; a missing file surfaces as ErrSourceNotFound so
// callers can point the user at the fetch step (see the zillow package).
package housing

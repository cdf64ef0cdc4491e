// Package influence computes faction territory outlines from point
// influence sources scattered over a continuous 2D map.
//
// Responsibilities: per-point field sampling, dominance grid construction,
// marching-squares contour extraction, segment stitching, and loop
// nesting (fill/hole hierarchy). The pipeline is a pure function of
// (sources, options); no state survives between calls.
// Key types: Source, Options, Result, TerritoryShape.
//
// Persistence of sources lives in the catalog subpackage; rendering of
// results lives in the monitor subpackage. No SQL/database code is
// allowed in this package.
package influence

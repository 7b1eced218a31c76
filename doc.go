// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package inkwell provides the interactive canvas rendering core of a 2D
// vector animation editor.
//
// # Overview
//
// inkwell keeps an editor viewport filled with rendered frame tiles while the
// user scrubs in time, zooms, and edits. Two subsystems compose the core:
//
//   - a memory-bounded tile cache and render scheduler (package canvas) that
//     diffs the visible viewport against cached tiles, submits missing regions
//     to a worker pool, composites onion-skinned frames, and evicts whole
//     frames by temporal and zoom distance when over budget;
//   - a polyspan contour rasterizer (package contour) that scan-converts
//     vector contours into sorted per-pixel coverage marks and blits them with
//     coverage-based antialiasing, two winding rules, and inversion.
//
// # Architecture
//
// The library is organized into:
//   - geom: vectors, affine transforms, rectangle algebra
//   - color: linear premultiplied color, blend methods, gamma curves
//   - surface: floating-point render surfaces and the pixel pen
//   - contour: contour chunks, polyspan scan conversion, coverage blitter
//   - rendering: task trees, completion events, the work-stealing task runner
//   - display: 8-bit premultiplied display surfaces and the software context
//   - canvas: frame identity, the tile cache, scheduler, and compositor
//
// The scene graph, document model, and UI toolkit are external collaborators
// reached through the canvas.Evaluator and canvas.WorkArea interfaces.
package inkwell

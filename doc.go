// Package metricspace is a toolkit for cost-based spike-train metrics and
// the information-theoretic analysis of neural responses.
//
// 🚀 What is metricspace?
//
//	A pure-Go library (plus one command) that brings together:
//		• Spike distances: Victor–Purpura edit distance over a whole cost grid in one DP pass
//		• Sliding search: minimum distance over a grid of relative time offsets
//		• All pairs: symmetric N×N×M distance tensors built by a bounded worker pool
//		• Decoding: leave-one-out nearest-class confusion matrices, with resampling
//		• Information: plug-in entropy / transinformation with jackknife and
//		  Treves–Panzeri bias corrections
//
// Packages:
//
//	matrix/    - Dense matrix, 3-D Tensor, validators and marginals
//	spkd/      - Distance, Align, SlidingDistance, Pairwise, SlidingPairwise
//	distclust/ - Classify → Confusion
//	entropy/   - HistInfo, JackknifeBias, TrevesPanzeriBias, TableInfo, TableBias …
//	cmd/spkd/  - job file in, JSON report out
//
// Quick pipeline:
//
//	trials ──spkd.Pairwise──▶ Tensor ──Plane(k)──▶ distclust.Classify ──▶ Confusion
//	                                                                   │
//	                                          entropy.TableInfo ◀──────┘
//
//	go get github.com/katalvlaran/metricspace
package metricspace

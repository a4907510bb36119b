// SPDX-License-Identifier: MIT

// Package entropy estimates Shannon entropy and transinformation (mutual
// information) from count histograms, together with small-sample bias
// corrections.
//
// Quantities are in bits. Inputs are counts (or probabilities: every
// estimator normalizes by the total first); negative, NaN or infinite
// entries are rejected with ErrNegativeCount / ErrBadValue.
//
// Estimators:
//
//   - HistInfo            - plug-in entropy of a 1-D histogram.
//   - JackknifeBias       - leave-one-out jackknife correction, closed form.
//   - TrevesPanzeriBias   - (bins-1) / (2·N·ln 2), over nonzero or all bins.
//   - TableInfo           - H(rows) + H(cols) − H(joint) of a 2-D count table.
//   - TableBias           - the same combination of 1-D corrections.
//   - TableTPBias         - Treves-Panzeri on the table after pruning empty rows/cols.
//   - TableInfoDebiased   - TableInfo + TableBias.
//
// Sign convention: every bias value is the correction to ADD to the plug-in
// quantity. Entropy corrections are therefore >= 0, and transinformation
// corrections are usually <= 0 (the plug-in estimate overshoots).
//
// The estimator is chosen by the BiasEstimator enum, never by string
// comparison; ParseBiasEstimator maps job-file names onto it.
package entropy

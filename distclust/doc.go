// SPDX-License-Identifier: MIT

// Package distclust decodes class membership from a precomputed distance
// matrix by leave-one-out nearest-class voting.
//
// Samples are laid out in class blocks: the first nsam[0] rows belong to
// class 0, the next nsam[1] rows to class 1, and so on. For each sample the
// classifier aggregates its distances to every other member of each class,
// votes for the class(es) with the smallest aggregate and accumulates the
// votes in a K×K confusion matrix (row = true class, column = decoded class).
//
// The decision runs in two stages that can be tested on their own:
//
//  1. aggregate - a power mean (mean(d^e))^(1/e) of the candidate distances,
//     or their median when the exponent is 0 / WithMedian is set.
//  2. trump     - when enabled and a class holds exact-zero distances, the
//     aggregate is replaced by -(zeros/candidates), so identical responses
//     always win over any averaging rule.
//
// Ties split the vote evenly; Confusion.Counts rounds the fractional matrix
// back to integers while preserving every row sum.
//
// Resampling:
//
//   - ResampleNone      - the matrix is used as given.
//   - ResampleRelabel   - samples are permuted across class blocks (null labeling).
//   - ResampleBootstrap - each class block is redrawn with replacement from its own
//     members. Bootstrap cannot be combined with trump: a duplicated sample sits at
//     distance 0 from itself and would always win.
//
// Every draw comes from a *rand.Rand seeded by Options.Seed, so a fixed seed
// reproduces the same confusion matrix.
package distclust

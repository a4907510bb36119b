// SPDX-License-Identifier: MIT

package spkd

// Offsets exposes the sliding offset grid to the external test package.
var Offsets = offsets

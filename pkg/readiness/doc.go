/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/

// Package readiness is the classification engine: pure decision logic that
// estimates whether a package supports a target Python version.
//
// # Signals
//
// Two independent signals are evaluated per package:
//
//   - ByWheelTags reads the build tags of the latest release's wheels
//   - ByClassifiers reads the trove classifier strings from the package
//     metadata
//
// Each produces a four-valued Status. Combine merges them by picking the
// more optimistic verdict; see the Combine documentation for why the policy
// is deliberately asymmetric.
//
// # Purity
//
// Every function in this package is a pure function of its inputs: no I/O,
// no hidden state, identical verdicts for identical inputs. Callers may
// evaluate packages concurrently without coordination.
package readiness

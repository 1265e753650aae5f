// SPDX-License-Identifier: MIT

// Package calc is the dispatcher a front end talks to: it turns a request
// made of text grids and an operation name into a computed Response with
// its trace, and renders that response for display.
//
// What it offers:
//   - Operation: the eight supported operations with a text/YAML codec.
//   - ParseGrid: lenient cell parsing; blank or unparsable cells read as 0.
//   - Evaluate / Response.Render: one request, synchronously.
//   - Submit: one request on a background goroutine, delivered on a channel.
//   - EvaluateAll: a batch on a bounded worker pool (errgroup); a failing
//     request is reported in its Outcome and does not stop the batch.
//   - DecodeRequests / EncodeOutcomes: YAML problem and result documents.
//   - Verify: cross-check a Response against gonum.
//
// A problem document looks like:
//
//	problems:
//	  - name: small system
//	    op: solve
//	    a: [[1, 1, 3], [2, -1, 0]]
//	  - op: strassen
//	    a: [[1, 2], [3, 4]]
//	    b: [[5, 6], [7, 8]]
//
// calc logs through the go-log logger named "calc"; the numeric packages
// it drives never log.
package calc

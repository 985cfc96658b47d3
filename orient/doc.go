// Package orient makes every face of a half-edge mesh wind consistently with
// its neighbors and partitions the faces into disconnected groups.
//
// What:
//
//   - Orient(m, opts...): iterative, stack-based depth-first propagation.
//     Each unoriented face seeds a new group; neighbors reachable through
//     Opposite links are pulled onto the stack, and a neighbor whose stored
//     winding runs a shared edge in the same direction as the current face is
//     flipped once via core.ReverseFace before being marked oriented.
//   - Result: the disconnected groups (maximal sets of faces connected via
//     shared edges) and a count of flipped faces.
//   - AllOriented(m): validation predicate over the per-face Oriented flag.
//
// Why:
//   - Builders accept an arbitrary winding per input face; every invariant
//     downstream (boundary structure, Euler characteristic, curvature signs)
//     assumes adjacent faces traverse their shared edge in opposite
//     directions.
//
// Determinism:
//   - Group seeds are taken in ascending face order, so group membership is
//     fully determined by the Opposite adjacency graph. The visitation order
//     inside a group is an implementation detail; treat groups as sets.
//
// Termination:
//   - Each outer iteration orients at least one face and no face is ever
//     un-oriented, so total work is linear in the number of half-edges.
//
// Options (functional):
//
//   - WithContext(ctx)  cancellation checked once per popped face
//   - WithOnVisit(fn)   pre-order hook per face; an error aborts propagation
//   - WithOnFlip(fn)    diagnostics hook invoked for every reversed face
//
// Errors:
//
//   - ErrMeshNil        mesh pointer is nil
//   - context.Canceled  propagation canceled via context
//   - hook errors       propagated from OnVisit
package orient

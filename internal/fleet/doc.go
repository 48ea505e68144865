// Package fleet reconciles a label-scoped set of Hetzner Cloud servers
// toward a requested count.
//
// # Flow
//
// A reconciliation is a single pass:
//
//  1. Snapshot lists every server once and keeps those whose labels satisfy
//     the configured label set.
//  2. Reconcile compares the desired count with the snapshot and yields a
//     Plan: NoOp, ScaleUp(n) or ScaleDown(n).
//  3. A Confirmer blocks until the operator acknowledges the plan.
//  4. Provisioner creates n servers, or Decommissioner deletes the first n
//     servers of the snapshot in listing order.
//
// Every step runs sequentially. The first provider error aborts the pass;
// servers already created or deleted stay that way and are picked up by the
// next invocation's snapshot.
package fleet

/*
Package dual implements a persistent tree carrying two kinds of annotation:
a bottom-up aggregate (the "up" value, cached at every node) and top-down
context (the "down" value, composed along root-to-leaf paths).

The two annotations are linked by an algebraic action: inserting a down value
above a subtree updates the subtree's cached aggregate through Algebra.Act
instead of recomputing it from the leaves, so applying context to an
arbitrarily large tree is a constant-time operation.

# Structure

A Tree is built from five node shapes: the empty tree, value leaves, up-only
leaves (annotation with no payload), down annotations wrapping a child, and
ordered concatenations. Concatenation is non-commutative: the left operand's
leaves come first in flatten order.

All trees are immutable. Every operation returns a new tree sharing untouched
subtrees with its inputs.

# Cancel-and-replace

Deletable wraps an up-value field in a bracket monoid so a field's aggregate
contribution can be nullified and replaced in O(1): bracket the tree between
an open and a close marker (spliced as up-only leaves), then splice the
replacement value after the close. Combining annihilates everything between a
matched open/close pair.
*/
package dual

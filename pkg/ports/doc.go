/*
Package ports defines the driven ports (interfaces) between the diagram core
and external collaborators.

These interfaces decouple the core from concrete geometry and renderers: the
tree holds primitives only through the Primitive capability interface, and
compiled render trees are consumed through the Backend contract.

# Key Interfaces

  - Primitive: anything that can live at a diagram leaf (transformable,
    freeze-aware, renderable by some backend).
  - Backend: interprets a compiled render tree, supplying an output monoid
    (Empty/Combine), per-node handlers, and a finalize step.
*/
package ports

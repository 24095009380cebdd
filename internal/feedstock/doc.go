// Package feedstock assembles a pixi render context from a feedstock checkout.
//
// It reads what conda-smithy leaves behind on disk: conda-forge.yml (via the
// config package), the per-variant files in .ci_support/, and the origin
// remote of the git checkout. A context can also be supplied directly as a
// YAML document with LoadContextFile.
package feedstock

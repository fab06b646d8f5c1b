// Package recipe builds numeric stage chains from YAML documents.
//
// A recipe names a list of steps. Each step refers to an operator registered
// in a Registry; the operators are composed in order with stage.Then. An
// optional fallback wraps the chain with stage.DefaultTo so every input
// yields a value.
//
//	name: evens-total
//	steps:
//	  - op: filter_even
//	  - op: scale
//	    args: {factor: 2}
//	  - op: add
//	fallback: -1
//
// Recipes may include other recipes by name. Included recipes run first and
// keep their own fallback, so a recipe behaves the same included or alone.
package recipe

/*
Package builder turns a KuiLang syntax tree into a symbol graph.

A Builder performs a single forward, pre-order traversal of one compilation
unit. It keeps one piece of mutable state, the current owning scope, and
every symbol it constructs is parented to that scope. The pass runs in three
steps:

 1. Seeding: a ProgramRoot is created for the program and the intrinsic
    types of the built-in registry are adopted into it.

 2. Binding: every syntax node is dispatched through internal/visit to its
    construction rule. Rules that introduce a scope push it on the scope
    stack for the duration of their children and pop it when they return,
    on every exit path. Declarations are registered by name on their owner;
    statements are appended to their block in source order. Nothing is
    resolved: identifier targets, call targets and types are left for later
    passes.

 3. Reporting: user mistakes found along the way (a declaration that is the
    only statement of a single-statement body, duplicate names in a scope)
    are emitted as diagnostics and the pass carries on. Contract violations
    between the front end and the builder abort the pass and are returned
    from Build as *InternalError.

Duplicate names follow a first-wins policy: the later declaration is still
built and its subtree bound, but it is not registered on its owner.

A Builder is single use and not safe for concurrent use. Bind several
programs concurrently with one Builder each.
*/
package builder

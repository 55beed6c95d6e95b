// Package param implements the typed, namespaced parameter registry shared
// by every tunable component in the engine (runners, kickers, solvers).
//
// Each Parametrized component owns a Box with a Prefix (its own name) and
// an ordered list of Values. Flags are routed as "<prefix>::<flag>"
// (e.g. "sa1::cooling_rate"); booleans additionally expose
// "<prefix>::<flag>-enable" / "<prefix>::<flag>-disable" zero-token
// switches. A Box round-trips through JSON as a {flag: value} object (a
// caller holding several boxes nests each under its Prefix) and can be
// populated interactively via ReadFromStream.
package param

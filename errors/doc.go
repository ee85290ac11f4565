/*
Package errors implements the error taxonomy shared by all extensions.

Reuse the root errors declared here whenever possible and register custom
ones only when a client must be able to tell them apart. Each extension owns
a code range (orm 100~109, sigs 120~129, token 1100~1109, offer 1200~1209).

Create instances with ErrXyz.New("...") or errors.Wrap(err, "...") at the
point of failure so that a stack trace is attached. Only the innermost wrap
records it. Test for a kind with ErrXyz.Is(err); the ABCI code of the root
error survives any number of wraps, which is what transaction results expose.

	%s and %v print the message chain
	%+v also prints the stack trace
*/
package errors

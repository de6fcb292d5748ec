/*
Package rimsjson is the codec between the in-memory document model and the
JSON format shared with RIMSSchemeDrawer.

Marshal produces the canonical, pretty-printed submission document and fails
closed on incomplete or invalid input. Unmarshal accepts both the current
shape (scheme fields under "rims_scheme.scheme") and the legacy flat "scheme"
shape, and normalizes either into the one domain model; the shape distinction
never leaves this package.

The State variants of both functions skip the completeness gate and default
every missing field. They exist for persisting the form across restarts and
are not a public file format.
*/
package rimsjson

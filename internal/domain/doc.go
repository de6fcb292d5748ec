/*
Package domain holds the typed model for a resonance ionization scheme
submission: the element table with ionization potentials, the scheme with its
fixed set of transition steps, saturation curve measurements, bibliographic
references, and the Document aggregate that is serialized for submission.

All numeric form fields are kept as strings, exactly as the user typed them and
exactly as the document format stores them; the parsing helpers in this package
are the single place where those strings are checked.
*/
package domain

package usecase

import (
	"fmt"
	"strings"

	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/domain"
	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/rimsjson"
)

// Submission targets. The issue tracker prefills title/body/labels from query
// parameters; percent-encoding of the body is left to the browser.
const (
	issueBaseURL    = "https://github.com/RIMS-Code/rims-code.github.io/issues/new"
	issueLabel      = "scheme-submission"
	maintainerEmail = "rims-code@googlegroups.com"

	// mailto bodies cannot contain raw newlines, so the banner ends without
	// one and every newline in the payload is encoded below.
	emailBanner = "New resonance ionization scheme submission\n" +
		"-------------------------------------------\n\n"
)

// SubmissionBody serializes the document for embedding in a submission link.
// It fails closed exactly like export.
func SubmissionBody(doc domain.Document) (string, error) {
	raw, err := rimsjson.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// IssueTitle is the deterministic submission title for an element.
func IssueTitle(e domain.Element) string {
	return fmt.Sprintf("Scheme submission: %s", e)
}

// GitHubIssueURL builds the issue-tracker URL with the serialized document as
// the prefilled body.
func GitHubIssueURL(body string, e domain.Element) string {
	return fmt.Sprintf("%s?labels=%s&title=%s&body=%s", issueBaseURL, issueLabel, IssueTitle(e), body)
}

// EmailLink builds a mailto URI to the maintainer address. Every literal
// newline in the body is translated to the encoded CRLF sequence.
func EmailLink(body string, e domain.Element) string {
	full := strings.ReplaceAll(emailBanner+body, "\n", "%0D%0A")
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", maintainerEmail, IssueTitle(e), full)
}

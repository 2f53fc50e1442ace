package core

import "fmt"

// ReviewQuery selects open pull requests on which Reviewer is a requested reviewer.
// The issue type and state are fixed.
type ReviewQuery struct {
	Reviewer string
}

// String compiles the query into a GitHub search expression.
func (q ReviewQuery) String() string {
	return fmt.Sprintf("type:pr state:open review-requested:%s", q.Reviewer)
}

package rule

import "github.com/stretchr/testify/mock"

// MatchRule creates a custom matcher for rule arguments in mocks
func MatchRule(matcher func(Rule) bool) interface{} {
	return mock.MatchedBy(matcher)
}

package accounts

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

type FuzzySource []AccDesc

func (s FuzzySource) Len() int {
	return len(s)
}

func (s FuzzySource) String(i int) string {
	return fmt.Sprintf("%s_%s", s[i].Address, strings.Replace(s[i].Desc, " ", "_", -1))
}

func NewFuzzySource() FuzzySource {
	return FuzzySource(GetAccounts())
}

// Match returns the account records matching input, best first, at most 10.
func (s FuzzySource) Match(input string) []AccDesc {
	matches := fuzzy.FindFrom(strings.Replace(input, " ", "_", -1), s)
	result := []AccDesc{}
	for i := 0; i < 10 && i < len(matches); i++ {
		result = append(result, s[matches[i].Index])
	}
	return result
}

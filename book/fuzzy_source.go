package book

import (
	"fmt"
	"sort"

	"github.com/sahilm/fuzzy"
)

type Entries []Entry

func (e Entries) Len() int {
	return len(e)
}

func (e Entries) String(i int) string {
	return fmt.Sprintf("%s_%s", e[i].Domain, e[i].Address)
}

func (e Entries) sort() {
	sort.Slice(e, func(i, j int) bool {
		return e[i].Domain < e[j].Domain
	})
}

func (e Entries) match(input string) []Entry {
	matches := fuzzy.FindFrom(input, e)
	result := []Entry{}
	for i := 0; i < 10 && i < len(matches); i++ {
		result = append(result, e[matches[i].Index])
	}
	return result
}

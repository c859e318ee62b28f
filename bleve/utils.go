package bleve

import (
	"github.com/blevesearch/bleve"
	"github.com/blevesearch/bleve/search/query"
)

func andQ(qs ...query.Query) query.Query {
	ands := make([]query.Query, 0, len(qs))
	for _, q := range qs {
		if q != nil {
			ands = append(ands, q)
		}
	}

	if len(ands) == 0 {
		return nil
	}
	return query.NewConjunctionQuery(ands)
}

func orQ(qs ...query.Query) query.Query {
	ors := make([]query.Query, 0, len(qs))
	for _, q := range qs {
		if q != nil {
			ors = append(ors, q)
		}
	}

	if len(ors) == 0 {
		return nil
	}
	return query.NewDisjunctionQuery(ors)
}

// prefixQuery analyzes word with the analyzer of the target field and
// requires every resulting token as a prefix in that field.
func prefixQuery(index bleve.Index, word, field, analyzerName string) query.Query {
	analyzer := index.Mapping().AnalyzerNamed(analyzerName)
	tokens := analyzer.Analyze([]byte(word))
	if len(tokens) == 0 {
		return nil
	}

	conjuncs := make([]query.Query, len(tokens))
	for i, token := range tokens {
		conjuncs[i] = &query.PrefixQuery{
			Prefix:   string(token.Term),
			FieldVal: field,
		}
	}

	return query.NewConjunctionQuery(conjuncs)
}

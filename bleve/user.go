package bleve

import (
	"strings"

	"github.com/blevesearch/bleve"
	"github.com/blevesearch/bleve/analysis/analyzer/simple"
	"github.com/blevesearch/bleve/analysis/lang/en"
	"github.com/blevesearch/bleve/mapping"
	"github.com/blevesearch/bleve/search/query"

	"github.com/bobinette/notehub"
)

type UserIndex struct {
	index bleve.Index
}

// Open opens the index at path, creating it when it does not exist yet.
func (s *UserIndex) Open(path string) error {
	index, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		index, err = bleve.New(path, userMapping())
	}
	if err != nil {
		return err
	}

	s.index = index
	return nil
}

func (s *UserIndex) Close() error {
	if s.index == nil {
		return nil
	}

	return s.index.Close()
}

func userMapping() *mapping.IndexMappingImpl {
	um := bleve.NewTextFieldMapping()
	um.Analyzer = simple.Name

	nm := bleve.NewTextFieldMapping()
	nm.Analyzer = en.AnalyzerName

	dm := bleve.NewDocumentMapping()
	dm.AddFieldMappingsAt("username", um)
	dm.AddFieldMappingsAt("name", nm)

	m := bleve.NewIndexMapping()
	m.DefaultMapping = dm
	return m
}

func (s *UserIndex) Index(user *notehub.User) error {
	data := map[string]interface{}{
		"username": user.Username,
		"name":     user.Name,
	}

	return s.index.Index(user.ID, data)
}

func (s *UserIndex) Delete(id string) error {
	return s.index.Delete(id)
}

func (s *UserIndex) Search(search notehub.UserSearch) (notehub.UserSearchResults, error) {
	q := andQ(
		query.NewMatchAllQuery(),
		s.searchUsernameOrName(search.Q),
	)

	if search.ExcludeID != "" {
		bq := bleve.NewBooleanQuery()
		bq.AddMust(q)
		bq.AddMustNot(query.NewDocIDQuery([]string{search.ExcludeID}))
		q = bq
	}

	searchRequest := bleve.NewSearchRequest(q)
	if search.SortBy == "desc" {
		searchRequest.SortBy([]string{"-_id"})
	} else {
		searchRequest.SortBy([]string{"_id"})
	}

	if search.Limit > 0 {
		searchRequest.Size = int(search.Limit)
	}
	searchRequest.From = int(search.Offset)

	searchResults, err := s.index.Search(searchRequest)
	if err != nil {
		return notehub.UserSearchResults{}, err
	}

	ids := make([]string, len(searchResults.Hits))
	for i, hit := range searchResults.Hits {
		ids[i] = hit.ID
	}

	return notehub.UserSearchResults{
		IDs: ids,
		Pagination: notehub.Pagination{
			Total:  searchResults.Total,
			Limit:  search.Limit,
			Offset: search.Offset,
		},
	}, nil
}

func (s *UserIndex) searchUsernameOrName(queryString string) query.Query {
	words := strings.Fields(queryString)

	ands := make([]query.Query, 0, len(words))
	for _, word := range words {
		ands = append(ands, orQ(
			prefixQuery(s.index, word, "username", simple.Name),
			prefixQuery(s.index, word, "name", en.AnalyzerName),
		))
	}

	return andQ(ands...)
}

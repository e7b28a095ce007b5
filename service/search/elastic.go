package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"

	"stockfilter.GO/config"
	"stockfilter.GO/model/api/searchcriteria"
	"stockfilter.GO/service/stockfilter"
)

var ErrElasticDisabled = errors.New("elasticsearch not configured")

// ElasticSearch queries the Magento catalog index <prefix>_catalog_product_<store>.
type ElasticSearch struct {
	client *elasticsearch.Client
	prefix string
}

// NewElasticSearch returns ErrElasticDisabled when cfg.Host is empty.
func NewElasticSearch(cfg config.Elastic) (*ElasticSearch, error) {
	if cfg.Host == "" {
		return nil, ErrElasticDisabled
	}
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.Host},
	})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client: %w", err)
	}
	return &ElasticSearch{client: client, prefix: cfg.IndexPrefix}, nil
}

// IndexName returns the product index of a store. Store 0 reads the default store view.
func (s *ElasticSearch) IndexName(storeID uint16) string {
	if storeID == 0 {
		storeID = 1
	}
	return fmt.Sprintf("%s_catalog_product_%d", s.prefix, storeID)
}

// Search returns matching product ids and the total hit count.
func (s *ElasticSearch) Search(ctx context.Context, storeID uint16, text string, criteria *searchcriteria.SearchCriteria, size int) ([]uint, int64, error) {
	body, err := json.Marshal(BuildElasticQuery(text, criteria, size))
	if err != nil {
		return nil, 0, err
	}
	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.IndexName(storeID)),
		s.client.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, 0, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, 0, fmt.Errorf("elasticsearch error: %s", res.String())
	}

	var esResp struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				ID     string                 `json:"_id"`
				Source map[string]interface{} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&esResp); err != nil {
		return nil, 0, err
	}

	ids := make([]uint, 0, len(esResp.Hits.Hits))
	for _, hit := range esResp.Hits.Hits {
		if entityID, ok := hit.Source["entity_id"].(float64); ok {
			ids = append(ids, uint(entityID))
			continue
		}
		if n, err := strconv.ParseUint(hit.ID, 10, 64); err == nil {
			ids = append(ids, uint(n))
		}
	}
	return ids, esResp.Hits.Total.Value, nil
}

// BuildElasticQuery renders text and criteria as a bool query. Filter groups become
// filter clauses; filters inside a group become should clauses.
func BuildElasticQuery(text string, criteria *searchcriteria.SearchCriteria, size int) map[string]interface{} {
	boolQuery := map[string]interface{}{}
	if text != "" {
		boolQuery["must"] = []interface{}{
			map[string]interface{}{
				"multi_match": map[string]interface{}{
					"query":  text,
					"fields": []string{"name^3", "sku^2", "description", "short_description"},
				},
			},
		}
	}

	var filters []interface{}
	for _, group := range criteria.GetFilterGroups() {
		var should []interface{}
		for _, f := range group.GetFilters() {
			if f == nil {
				continue
			}
			if clause := elasticClause(f); clause != nil {
				should = append(should, clause)
			}
		}
		switch len(should) {
		case 0:
		case 1:
			filters = append(filters, should[0])
		default:
			filters = append(filters, map[string]interface{}{
				"bool": map[string]interface{}{"should": should, "minimum_should_match": 1},
			})
		}
	}
	if len(filters) > 0 {
		boolQuery["filter"] = filters
	}

	return map[string]interface{}{
		"from":    0,
		"size":    size,
		"_source": []string{"entity_id"},
		"query":   map[string]interface{}{"bool": boolQuery},
	}
}

func elasticClause(f *searchcriteria.Filter) map[string]interface{} {
	field := f.Field
	switch field {
	case stockfilter.FieldStockStatus:
		return term("stock_status", stockfilter.NormalizeStockStatus(f.Value))
	case "category_id":
		field = "category_ids"
	case "entity_id":
		field = "_id"
	}
	switch f.GetConditionType() {
	case searchcriteria.ConditionEq:
		return term(field, f.Value)
	case searchcriteria.ConditionIn:
		return map[string]interface{}{"terms": map[string]interface{}{field: inValues(f.Value)}}
	case searchcriteria.ConditionLike:
		pattern := strings.ReplaceAll(fmt.Sprint(f.Value), "%", "*")
		return map[string]interface{}{"wildcard": map[string]interface{}{field: pattern}}
	case searchcriteria.ConditionGt, searchcriteria.ConditionGteq, searchcriteria.ConditionLt, searchcriteria.ConditionLteq:
		op := strings.TrimSuffix(f.GetConditionType(), "eq")
		if op != f.GetConditionType() {
			op += "e"
		}
		return map[string]interface{}{"range": map[string]interface{}{field: map[string]interface{}{op: f.Value}}}
	}
	return nil
}

func term(field string, value interface{}) map[string]interface{} {
	return map[string]interface{}{"term": map[string]interface{}{field: value}}
}

func inValues(value interface{}) []interface{} {
	switch v := value.(type) {
	case []interface{}:
		return v
	case []string:
		out := make([]interface{}, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	case string:
		var out []interface{}
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return []interface{}{value}
}

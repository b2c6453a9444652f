package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/localchefbazaar/backend/internal/models"
)

const DefaultMealIndex = "meals"

type MealIndex struct {
	Client *elasticsearch.Client
	Index  string
}

func NewMealIndex(client *elasticsearch.Client) *MealIndex {
	return &MealIndex{Client: client, Index: DefaultMealIndex}
}

func (ix *MealIndex) IndexMeal(ctx context.Context, m *models.Meal) error {
	body, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("elasticsearch: encode meal: %w", err)
	}
	res, err := ix.Client.Index(ix.Index, bytes.NewReader(body),
		ix.Client.Index.WithContext(ctx),
		ix.Client.Index.WithDocumentID(m.ID),
	)
	if err != nil {
		return fmt.Errorf("elasticsearch: index meal %s: %w", m.ID, err)
	}
	defer res.Body.Close()
	return responseError(res.StatusCode, res.IsError(), res.Body, "index meal")
}

// DeleteMeal removes a meal document; a missing document is not an error.
func (ix *MealIndex) DeleteMeal(ctx context.Context, id string) error {
	res, err := ix.Client.Delete(ix.Index, id, ix.Client.Delete.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("elasticsearch: delete meal %s: %w", id, err)
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusNotFound {
		return nil
	}
	return responseError(res.StatusCode, res.IsError(), res.Body, "delete meal")
}

// SearchMeals runs a fuzzy multi_match over meal name, chef name and ingredients.
func (ix *MealIndex) SearchMeals(ctx context.Context, query string, from, size int) (int64, []models.Meal, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"mealName^2", "chefName", "ingredients"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("elasticsearch: encode query: %w", err)
	}

	res, err := ix.Client.Search(
		ix.Client.Search.WithContext(ctx),
		ix.Client.Search.WithIndex(ix.Index),
		ix.Client.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("elasticsearch: search: %w", err)
	}
	defer res.Body.Close()
	if err := responseError(res.StatusCode, res.IsError(), res.Body, "search"); err != nil {
		return 0, nil, err
	}

	var r struct {
		Hits struct {
			Total struct{ Value int64 } `json:"total"`
			Hits  []struct {
				Source models.Meal `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, fmt.Errorf("elasticsearch: decode search: %w", err)
	}

	meals := make([]models.Meal, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		meals[i] = hit.Source
	}
	return r.Hits.Total.Value, meals, nil
}

func responseError(status int, isErr bool, body io.Reader, op string) error {
	if !isErr {
		return nil
	}
	msg, _ := io.ReadAll(body)
	return fmt.Errorf("elasticsearch: %s: status %d: %s", op, status, msg)
}

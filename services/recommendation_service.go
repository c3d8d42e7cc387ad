package services

import (
	"context"
	"log"
	"strconv"
	"sync"

	"github.com/GDG-MenuMate/MenuMate-BE/repository"
)

// MenuDetailFinder resolves a recommended (restaurant, menu) pair to
// the stored detail row.
type MenuDetailFinder interface {
	FindDetailByNames(restaurantName, menuName string) (*repository.MenuDetail, error)
}

// RecommendationResponse groups enriched menus by meal slot. Slots the
// AI did not fill are absent from the map.
type RecommendationResponse struct {
	Recommendations map[string][]RecommendedMenu `json:"recommendations"`
}

type RecommendedMenu struct {
	RestaurantName string   `json:"restaurant_name"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          int      `json:"price"`
	Calories       string   `json:"calories"`
	URL            string   `json:"url"`
	Location       Location `json:"location"`
}

type Location struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

type RecommendationService struct {
	AI    *AIClient
	Menus MenuDetailFinder
}

func NewRecommendationService(ai *AIClient, menus MenuDetailFinder) *RecommendationService {
	return &RecommendationService{AI: ai, Menus: menus}
}

// Recommend runs the full pipeline for a validated request: build the
// AI input, call the AI server, enrich the answer from the store.
func (s *RecommendationService) Recommend(ctx context.Context, req *RecommendRequest) (*RecommendationResponse, error) {
	result, err := s.AI.Recommend(ctx, BuildAIInput(req))
	if err != nil {
		return nil, err
	}
	return s.Transform(result), nil
}

// Transform enriches each populated slot from the store and groups the
// outcome by meal. Enrichment is best-effort: a failed lookup falls
// back to the AI-provided fields and never fails the response. Slot
// lookups run concurrently and independently.
func (s *RecommendationService) Transform(result *AIResult) *RecommendationResponse {
	slots := []struct {
		meal string
		rec  *AIRecommendation
	}{
		{"BREAKFAST", result.Morning},
		{"LUNCH", result.Lunch},
		{"DINNER", result.Dinner},
	}

	resp := &RecommendationResponse{Recommendations: map[string][]RecommendedMenu{}}

	populated := slots[:0]
	for _, slot := range slots {
		if slot.rec != nil {
			populated = append(populated, slot)
		}
	}
	if len(populated) == 0 {
		return resp
	}

	items := make([]RecommendedMenu, len(populated))
	var wg sync.WaitGroup
	for i, slot := range populated {
		wg.Add(1)
		go func(i int, rec *AIRecommendation) {
			defer wg.Done()
			items[i] = s.enrich(rec)
		}(i, slot.rec)
	}
	wg.Wait()

	for i, slot := range populated {
		resp.Recommendations[slot.meal] = []RecommendedMenu{items[i]}
	}
	return resp
}

// enrich merges the stored menu detail over the AI recommendation.
// Store values win; AI values are the fallback; missing on both sides
// gives "" / 0.
func (s *RecommendationService) enrich(rec *AIRecommendation) RecommendedMenu {
	item := RecommendedMenu{
		RestaurantName: rec.RestaurantName,
		Name:           rec.MenuName,
		Description:    rec.Justification,
		Price:          rec.Price,
	}

	detail, err := s.Menus.FindDetailByNames(rec.RestaurantName, rec.MenuName)
	if err != nil {
		log.Printf("menu detail lookup failed for %q / %q: %v", rec.RestaurantName, rec.MenuName, err)
		return item
	}

	if detail.Description != "" {
		item.Description = detail.Description
	}
	if detail.Price != 0 {
		item.Price = detail.Price
	}
	if detail.Calories != 0 {
		item.Calories = strconv.Itoa(detail.Calories)
	}
	item.URL = detail.RestaurantURL
	item.Location = Location{Lat: detail.Latitude, Long: detail.Longitude}
	return item
}

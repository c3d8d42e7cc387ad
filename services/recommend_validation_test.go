package services_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GDG-MenuMate/MenuMate-BE/pkg/apierr"
	"github.com/GDG-MenuMate/MenuMate-BE/services"
)

func flexInt(v int) *services.FlexInt {
	f := services.FlexInt(v)
	return &f
}

func TestValidateRecommendRequest(t *testing.T) {
	t.Parallel()

	meals := []string{"LUNCH"}

	tests := []struct {
		name     string
		req      services.RecommendRequest
		wantCode string
	}{
		{
			name:     "category and prompt both absent",
			req:      services.RecommendRequest{Meals: meals},
			wantCode: apierr.CodeMissingRequirement,
		},
		{
			name: "prompt alone is enough",
			req:  services.RecommendRequest{Meals: meals, Prompt: "고기 위주로 골라줘"},
		},
		{
			name: "category alone is enough",
			req:  services.RecommendRequest{Meals: meals, Category: "HALAL"},
		},
		{
			name:     "DIET without dietInfo",
			req:      services.RecommendRequest{Meals: meals, Category: "DIET"},
			wantCode: apierr.CodeMissingDietType,
		},
		{
			name: "DIET with dietInfo",
			req: services.RecommendRequest{
				Meals: meals, Category: "DIET",
				DietInfo: &services.DietInfo{Height: flexInt(165), Weight: flexInt(50)},
			},
		},
		{
			name: "height below range",
			req: services.RecommendRequest{
				Meals: meals, Category: "DIET",
				DietInfo: &services.DietInfo{Height: flexInt(99)},
			},
			wantCode: apierr.CodeInvalidDietType,
		},
		{
			name: "height above range",
			req: services.RecommendRequest{
				Meals: meals, Category: "DIET",
				DietInfo: &services.DietInfo{Height: flexInt(251)},
			},
			wantCode: apierr.CodeInvalidDietType,
		},
		{
			name: "height bounds are inclusive",
			req: services.RecommendRequest{
				Meals: meals, Category: "DIET",
				DietInfo: &services.DietInfo{Height: flexInt(100), Weight: flexInt(300)},
			},
		},
		{
			name: "upper bounds are inclusive",
			req: services.RecommendRequest{
				Meals: meals, Category: "DIET",
				DietInfo: &services.DietInfo{Height: flexInt(250), Weight: flexInt(30)},
			},
		},
		{
			name: "weight below range",
			req: services.RecommendRequest{
				Meals: meals, Category: "DIET",
				DietInfo: &services.DietInfo{Weight: flexInt(29)},
			},
			wantCode: apierr.CodeInvalidDietType,
		},
		{
			name: "weight above range",
			req: services.RecommendRequest{
				Meals: meals, Category: "DIET",
				DietInfo: &services.DietInfo{Weight: flexInt(301)},
			},
			wantCode: apierr.CodeInvalidDietType,
		},
		{
			name: "dietInfo ranges apply outside DIET too",
			req: services.RecommendRequest{
				Meals: meals, Prompt: "아무거나",
				DietInfo: &services.DietInfo{Height: flexInt(50)},
			},
			wantCode: apierr.CodeInvalidDietType,
		},
		{
			name: "minPrice above maxPrice",
			req: services.RecommendRequest{
				Meals: meals, Prompt: "아무거나",
				Price: &services.PriceRange{MinPrice: flexInt(12000), MaxPrice: flexInt(5000)},
			},
			wantCode: apierr.CodeInvalidPriceRange,
		},
		{
			name: "equal min and max price pass",
			req: services.RecommendRequest{
				Meals: meals, Prompt: "아무거나",
				Price: &services.PriceRange{MinPrice: flexInt(8000), MaxPrice: flexInt(8000)},
			},
		},
		{
			name: "one-sided price passes",
			req: services.RecommendRequest{
				Meals: meals, Prompt: "아무거나",
				Price: &services.PriceRange{MinPrice: flexInt(999999)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := services.ValidateRecommendRequest(&tt.req)
			if tt.wantCode == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tt.wantCode, err.Code)
			assert.Equal(t, 400, err.Status)
			assert.NotEmpty(t, err.Message)
		})
	}
}

// The first violated rule in declaration order wins, even when several
// rules are violated at once.
func TestValidateRecommendRequestReportsFirstViolation(t *testing.T) {
	t.Parallel()

	req := services.RecommendRequest{
		Meals: []string{"DINNER"},
		Price: &services.PriceRange{MinPrice: flexInt(10), MaxPrice: flexInt(5)},
	}
	err := services.ValidateRecommendRequest(&req)
	require.NotNil(t, err)
	assert.Equal(t, apierr.CodeMissingRequirement, err.Code)

	req.Category = "DIET"
	req.DietInfo = &services.DietInfo{Height: flexInt(10)}
	err = services.ValidateRecommendRequest(&req)
	require.NotNil(t, err)
	assert.Equal(t, apierr.CodeInvalidDietType, err.Code)
}

func TestFlexIntCoercion(t *testing.T) {
	t.Parallel()

	var req services.RecommendRequest
	body := `{"meals":["LUNCH"],"category":"DIET","dietInfo":{"height":"165","weight":50},"price":{"minPrice":"5000","maxPrice":12000}}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, 165, req.DietInfo.Height.Int())
	assert.Equal(t, 50, req.DietInfo.Weight.Int())
	assert.Equal(t, 5000, req.Price.MinPrice.Int())
	assert.Equal(t, 12000, req.Price.MaxPrice.Int())

	assert.Error(t, json.Unmarshal([]byte(`{"dietInfo":{"height":"tall"}}`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"dietInfo":{"height":165.5}}`), &req))

	var di services.DietInfo
	require.NoError(t, json.Unmarshal([]byte(`{"height":null}`), &di))
	assert.Nil(t, di.Height)
}

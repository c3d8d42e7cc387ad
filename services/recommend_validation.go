package services

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/GDG-MenuMate/MenuMate-BE/pkg/apierr"
)

// Cross-field rules, checked in declaration order. Only the first
// violation is reported to the client.
var recommendRules = []struct {
	failed  func(*RecommendRequest) bool
	code    string
	message string
}{
	{
		failed:  func(r *RecommendRequest) bool { return r.Category == "" && r.Prompt == "" },
		code:    apierr.CodeMissingRequirement,
		message: "카테고리 혹은 프롬프트를 입력해주세요.",
	},
	{
		failed:  func(r *RecommendRequest) bool { return r.Category == "DIET" && r.DietInfo == nil },
		code:    apierr.CodeMissingDietType,
		message: "다이어트 식단 선택 시 키, 몸무게 작성이 필수입니다.",
	},
	{
		failed: func(r *RecommendRequest) bool {
			if r.DietInfo == nil || r.DietInfo.Height == nil {
				return false
			}
			h := r.DietInfo.Height.Int()
			return h < 100 || h > 250
		},
		code:    apierr.CodeInvalidDietType,
		message: "키 입력 값을 다시 확인해주세요. (100-250cm)",
	},
	{
		failed: func(r *RecommendRequest) bool {
			if r.DietInfo == nil || r.DietInfo.Weight == nil {
				return false
			}
			w := r.DietInfo.Weight.Int()
			return w < 30 || w > 300
		},
		code:    apierr.CodeInvalidDietType,
		message: "몸무게 입력 값을 다시 확인해주세요. (30-300kg)",
	},
	{
		failed: func(r *RecommendRequest) bool {
			if r.Price == nil || r.Price.MinPrice == nil || r.Price.MaxPrice == nil {
				return false
			}
			return r.Price.MinPrice.Int() > r.Price.MaxPrice.Int()
		},
		code:    apierr.CodeInvalidPriceRange,
		message: "minPrice는 maxPrice보다 클 수 없습니다.",
	},
}

// ValidateRecommendRequest runs the business rules over an already
// bound request. Pure; returns nil when every rule passes.
func ValidateRecommendRequest(req *RecommendRequest) *apierr.Error {
	for _, rule := range recommendRules {
		if rule.failed(req) {
			return apierr.BadRequest(rule.code, rule.message)
		}
	}
	return nil
}

// BindErrorToAPI maps a ShouldBindJSON failure to the client-facing
// 400. The empty-meals case keeps its dedicated message; everything
// else is a generic INVALID_PARAMETER.
func BindErrorToAPI(err error) *apierr.Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "Meals" && (fe.Tag() == "min" || fe.Tag() == "required") {
				return apierr.BadRequest(apierr.CodeInvalidParameter, "meals 배열은 최소 1개 이상이어야 합니다.")
			}
		}
	}
	return apierr.BadRequest(apierr.CodeInvalidParameter, "Invalid request body")
}

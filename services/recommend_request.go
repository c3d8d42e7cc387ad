package services

import (
	"bytes"
	"fmt"
	"strconv"
)

// RecommendRequest is the body of POST /recommend after binding.
// Structural rules live in the binding tags; cross-field rules are in
// ValidateRecommendRequest.
type RecommendRequest struct {
	Category string      `json:"category" binding:"omitempty,oneof=DIET VEGETARIAN LOW_SUGAR HALAL"`
	DietInfo *DietInfo   `json:"dietInfo" binding:"omitempty"`
	Campus   []string    `json:"campus"`
	Meals    []string    `json:"meals" binding:"required,min=1,dive,oneof=BREAKFAST LUNCH DINNER"`
	Price    *PriceRange `json:"price" binding:"omitempty"`
	Prompt   string      `json:"prompt"`
}

type DietInfo struct {
	Height *FlexInt `json:"height" binding:"omitempty,gte=0"`
	Weight *FlexInt `json:"weight" binding:"omitempty,gte=0"`
}

type PriceRange struct {
	MinPrice *FlexInt `json:"minPrice" binding:"omitempty,gte=0"`
	MaxPrice *FlexInt `json:"maxPrice" binding:"omitempty,gte=0"`
}

// FlexInt accepts a JSON number or a numeric string ("165" and 165 are
// both fine — clients send both).
type FlexInt int

func (v *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(bytes.TrimSpace(b), `"`)
	if string(b) == "null" {
		return nil
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return fmt.Errorf("expected an integer, got %s", b)
	}
	*v = FlexInt(n)
	return nil
}

func (v *FlexInt) Int() int {
	if v == nil {
		return 0
	}
	return int(*v)
}

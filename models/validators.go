package models

import "github.com/go-playground/validator"

var validCategories = map[string]bool{
	CategoryTops:         true,
	CategoryBottomsPants: true,
	CategoryBottomsSkirt: true,
	CategoryOnePiece:     true,
	CategoryOuterwear:    true,
	CategoryFootwear:     true,
	CategoryAccessory:    true,
}

var validSeasons = map[string]bool{
	SeasonAll:          true,
	SeasonSpringSummer: true,
	SeasonAutumnWinter: true,
}

func ValidateCategory(fl validator.FieldLevel) bool {
	return validCategories[fl.Field().String()]
}

func ValidateSeason(fl validator.FieldLevel) bool {
	return validSeasons[fl.Field().String()]
}

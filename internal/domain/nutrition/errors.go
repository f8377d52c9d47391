package nutrition

import "errors"

var (
	ErrEmptyRecipeName     = errors.New("recipe name cannot be empty")
	ErrNonPositiveQuantity = errors.New("quantity must be greater than zero")
	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrFoodNotFound        = errors.New("food not found")
	ErrFoodNotCustom       = errors.New("only custom foods can be changed")
	ErrInvalidCategory     = errors.New("invalid category")
)

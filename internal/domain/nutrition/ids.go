package nutrition

import (
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IdGenerator produces identifiers for plate items, recipes and recipe items.
type IdGenerator func() string

func NewObjectId() string {
	return primitive.NewObjectID().Hex()
}

const customFoodIdPrefix = "custom_"

func newCustomFoodId() string {
	return customFoodIdPrefix + uuid.NewString()
}

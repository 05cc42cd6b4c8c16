package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealRequest is a claim by one user against a specific meal. At most one
// request may exist per (recEmail, recMealId) pair.
type MealRequest struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RequesterEmail string             `bson:"recEmail" json:"recEmail"`
	RequesterName  string             `bson:"recName" json:"recName"`
	MealID         string             `bson:"recMealId" json:"recMealId"`
	Status         string             `bson:"status" json:"status"` // "pending", "processing", "served"
	CreatedAt      string             `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

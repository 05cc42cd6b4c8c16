package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Meal struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title            string             `bson:"title" json:"title"`
	MealType         string             `bson:"mealType" json:"mealType"` // "breakfast", "lunch", "dinner"
	Image            string             `bson:"image,omitempty" json:"image,omitempty"`
	Ingredients      string             `bson:"ingredients,omitempty" json:"ingredients,omitempty"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	Price            float64            `bson:"price" json:"price"`
	Rating           float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	PostTime         string             `bson:"postTime,omitempty" json:"postTime,omitempty"`
	Likes            int                `bson:"likes" json:"likes"`
	ReviewCount      int                `bson:"review" json:"review"`
	DistributorName  string             `bson:"distributorName,omitempty" json:"distributorName,omitempty"`
	DistributorEmail string             `bson:"distributorEmail,omitempty" json:"distributorEmail,omitempty"`
}

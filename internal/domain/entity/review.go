package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PostID    string             `bson:"postId" json:"postId"`
	Rating    int                `bson:"rating" json:"rating"` // 1-5 expected, not enforced
	Text      string             `bson:"text,omitempty" json:"text,omitempty"`
	UserEmail string             `bson:"reviewUserEmail" json:"reviewUserEmail"`
	UserName  string             `bson:"reviewUserName,omitempty" json:"reviewUserName,omitempty"`
	CreatedAt string             `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// RatingSummary aggregates all reviews of one post. A post without reviews
// yields the zero value, never a division error.
type RatingSummary struct {
	TotalRating   int     `json:"totalRating"`
	TotalCount    int     `json:"totalCount"`
	AverageRating float64 `json:"averageRating"`
}

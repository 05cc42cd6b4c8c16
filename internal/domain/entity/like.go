package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like is the per-(email, post) ledger record behind the aggregate likes
// counter on a meal. The counter on the meal and this record are written
// independently; the ledger is the source for "does this user like this post".
type Like struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email  string             `bson:"email" json:"email"`
	PostID string             `bson:"postId" json:"postId"`
	Liked  bool               `bson:"liked" json:"liked"`
}

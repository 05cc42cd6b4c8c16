package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an append-only record of a paid membership tier. Inserting one
// also sets the payer's badge on the users collection.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Name          string             `bson:"name,omitempty" json:"name,omitempty"`
	Badge         string             `bson:"badge" json:"badge"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Date          string             `bson:"date,omitempty" json:"date,omitempty"`
}

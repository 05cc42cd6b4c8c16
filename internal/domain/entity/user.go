package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"userEmail" json:"userEmail"`
	Name  string             `bson:"userName" json:"userName"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`   // "member", "admin"
	Badge string             `bson:"badge,omitempty" json:"badge,omitempty"` // "Bronze", "Silver", "Gold", "Platinum"
}

package models

import "time"

// Review is a customer review of a product. UserName is a snapshot of the
// author's display name at creation. Reviews are never updated or deleted,
// and an account may review the same product any number of times.
type Review struct {
	ID        string    `bson:"_id"        json:"id"`
	ProductID string    `bson:"product_id" json:"product_id"`
	UserID    string    `bson:"user_id"    json:"user_id"`
	UserName  string    `bson:"user_name"  json:"user_name"`
	Rating    int       `bson:"rating"     json:"rating"` // 1..5 inclusive
	Comment   string    `bson:"comment"    json:"comment"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

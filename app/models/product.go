package models

import "time"

// Category is the closed set of catalog categories.
type Category string

const (
	CategoryCoffee   Category = "coffee"
	CategoryTea      Category = "tea"
	CategoryPastry   Category = "pastry"
	CategorySandwich Category = "sandwich"
	CategoryCake     Category = "cake"
	CategoryCookie   Category = "cookie"
	CategoryBeverage Category = "beverage"
)

// Valid reports whether c is one of the known categories. The store itself is
// schema-less, so every write path validates before inserting.
func (c Category) Valid() bool {
	switch c {
	case CategoryCoffee, CategoryTea, CategoryPastry, CategorySandwich,
		CategoryCake, CategoryCookie, CategoryBeverage:
		return true
	}
	return false
}

// Product is a catalog entry. Products are never deleted; flipping Available
// to false hides them from listings and search instead.
type Product struct {
	ID              string             `bson:"_id"              json:"id"`
	Name            string             `bson:"name"             json:"name"`
	Description     string             `bson:"description"      json:"description"`
	Price           float64            `bson:"price"            json:"price"`
	Category        Category           `bson:"category"         json:"category"`
	ImageURL        string             `bson:"image_url"        json:"image_url"`
	Available       bool               `bson:"available"        json:"available"`
	Ingredients     []string           `bson:"ingredients"      json:"ingredients"`
	NutritionalInfo map[string]float64 `bson:"nutritional_info" json:"nutritional_info"`
	CreatedAt       time.Time          `bson:"created_at"       json:"created_at"`
}

package seeders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cafedelights/api/app/models"
	"github.com/cafedelights/api/pkg/database"
)

func init() {
	Register("catalog", SeedCatalog)
}

// starterMenu is the catalog a fresh deployment opens with.
func starterMenu() []models.Product {
	return []models.Product{
		{
			Name:            "Espresso",
			Description:     "Rich and bold espresso shot made from premium coffee beans",
			Price:           2.50,
			Category:        models.CategoryCoffee,
			ImageURL:        "https://images.unsplash.com/photo-1541167760496-1628856ab772?w=400&h=300&fit=crop",
			Ingredients:     []string{"coffee beans", "water"},
			NutritionalInfo: map[string]float64{"calories": 5, "caffeine_mg": 63},
		},
		{
			Name:            "Cappuccino",
			Description:     "Perfect balance of espresso, steamed milk, and foam",
			Price:           4.25,
			Category:        models.CategoryCoffee,
			ImageURL:        "https://images.unsplash.com/photo-1572442388796-11668a67e53d?w=400&h=300&fit=crop",
			Ingredients:     []string{"coffee beans", "milk", "milk foam"},
			NutritionalInfo: map[string]float64{"calories": 120, "caffeine_mg": 63},
		},
		{
			Name:            "Latte",
			Description:     "Smooth espresso with steamed milk and light foam",
			Price:           4.50,
			Category:        models.CategoryCoffee,
			ImageURL:        "https://images.unsplash.com/photo-1561882468-9110e03e0f78?w=400&h=300&fit=crop",
			Ingredients:     []string{"coffee beans", "steamed milk"},
			NutritionalInfo: map[string]float64{"calories": 150, "caffeine_mg": 63},
		},
		{
			Name:            "Croissant",
			Description:     "Buttery, flaky French pastry perfect for breakfast",
			Price:           3.50,
			Category:        models.CategoryPastry,
			ImageURL:        "https://images.unsplash.com/photo-1555507036-ab794f27da6a?w=400&h=300&fit=crop",
			Ingredients:     []string{"flour", "butter", "yeast", "milk", "eggs"},
			NutritionalInfo: map[string]float64{"calories": 231, "fat_g": 12},
		},
		{
			Name:            "Blueberry Muffin",
			Description:     "Fresh baked muffin loaded with juicy blueberries",
			Price:           3.25,
			Category:        models.CategoryPastry,
			ImageURL:        "https://images.unsplash.com/photo-1607958996333-41aef7caefaa?w=400&h=300&fit=crop",
			Ingredients:     []string{"flour", "blueberries", "sugar", "eggs", "butter"},
			NutritionalInfo: map[string]float64{"calories": 265, "sugar_g": 18},
		},
		{
			Name:            "Club Sandwich",
			Description:     "Triple-decker with turkey, bacon, lettuce, and tomato",
			Price:           8.75,
			Category:        models.CategorySandwich,
			ImageURL:        "https://images.unsplash.com/photo-1567234669003-dce7a7a88821?w=400&h=300&fit=crop",
			Ingredients:     []string{"bread", "turkey", "bacon", "lettuce", "tomato", "mayo"},
			NutritionalInfo: map[string]float64{"calories": 450, "protein_g": 28},
		},
		{
			Name:            "Chocolate Cake",
			Description:     "Rich, moist chocolate cake with chocolate frosting",
			Price:           5.50,
			Category:        models.CategoryCake,
			ImageURL:        "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=400&h=300&fit=crop",
			Ingredients:     []string{"flour", "cocoa", "sugar", "eggs", "butter", "chocolate"},
			NutritionalInfo: map[string]float64{"calories": 365, "sugar_g": 35},
		},
	}
}

// SeedCatalog inserts the starter menu. It is a no-op once any product
// exists, so redeploys never duplicate the catalog.
func SeedCatalog(ctx context.Context, db *mongo.Database) error {
	col := db.Collection(database.ColProducts)

	n, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	now := time.Now().UTC()
	menu := starterMenu()
	docs := make([]interface{}, len(menu))
	for i := range menu {
		menu[i].ID = uuid.NewString()
		menu[i].Available = true
		menu[i].CreatedAt = now
		docs[i] = menu[i]
	}

	_, err = col.InsertMany(ctx, docs)
	return err
}

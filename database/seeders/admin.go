package seeders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cafedelights/api/app/models"
	"github.com/cafedelights/api/pkg/auth"
	"github.com/cafedelights/api/pkg/database"
)

// Default admin credentials. Change the password after first login.
const (
	AdminEmail    = "admin@cafe.com"
	adminPassword = "admin123"
)

func init() {
	Register("admin", SeedAdmin)
}

// SeedAdmin creates the bootstrap admin account unless one already exists.
func SeedAdmin(ctx context.Context, db *mongo.Database) error {
	col := db.Collection(database.ColAccounts)

	n, err := col.CountDocuments(ctx, bson.M{"role": models.RoleAdmin})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	account := models.Account{
		ID:        uuid.NewString(),
		Email:     AdminEmail,
		Name:      "Admin",
		Role:      models.RoleAdmin,
		Password:  auth.HashPassword(adminPassword),
		CreatedAt: time.Now().UTC(),
	}

	_, err = col.InsertOne(ctx, account)
	return err
}

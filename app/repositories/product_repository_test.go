package repositories

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestSearchFilterShape(t *testing.T) {
	filter := searchFilter("cro")

	if filter["available"] != true {
		t.Error("search must only match on-sale products")
	}

	or, ok := filter["$or"].(bson.A)
	if !ok || len(or) != 2 {
		t.Fatalf("expected a two-branch $or, got %v", filter["$or"])
	}

	name := or[0].(bson.M)["name"].(bson.M)
	if name["$options"] != "i" {
		t.Error("name match must be case-insensitive")
	}
	if name["$regex"] != "cro" {
		t.Errorf("regex = %v", name["$regex"])
	}
}

func TestSearchFilterQuotesMetaChars(t *testing.T) {
	filter := searchFilter("a.b*c")
	name := filter["$or"].(bson.A)[0].(bson.M)["name"].(bson.M)
	if name["$regex"] != `a\.b\*c` {
		t.Errorf("regex meta characters must be escaped literally, got %v", name["$regex"])
	}
}

package seeders

import "testing"

func TestStarterMenu(t *testing.T) {
	menu := starterMenu()
	if len(menu) != 7 {
		t.Fatalf("expected 7 starter products, got %d", len(menu))
	}

	for _, p := range menu {
		if p.Name == "" || p.Description == "" || p.ImageURL == "" {
			t.Errorf("%s: incomplete product", p.Name)
		}
		if !p.Category.Valid() {
			t.Errorf("%s: invalid category %q", p.Name, p.Category)
		}
		if len(p.Ingredients) == 0 {
			t.Errorf("%s: missing ingredients", p.Name)
		}
		if len(p.NutritionalInfo) == 0 {
			t.Errorf("%s: missing nutritional info", p.Name)
		}
	}

	if menu[0].Name != "Espresso" || menu[0].Price != 2.50 {
		t.Errorf("unexpected first product: %+v", menu[0])
	}
	if menu[0].NutritionalInfo["caffeine_mg"] != 63 {
		t.Errorf("espresso caffeine = %v", menu[0].NutritionalInfo["caffeine_mg"])
	}
}

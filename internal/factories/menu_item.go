package factories

import (
	"math/rand"

	"github.com/brewdash/brewdash/internal/models"
	"github.com/lucsky/cuid"
)

type MenuItemFactory struct{}

func (mf *MenuItemFactory) CreateMenuItem() *models.MenuItem {
	category := generateRandomCategory()
	return &models.MenuItem{
		ID:          cuid.New(),
		Name:        generateRandomMenuItemName(category),
		Description: fake.Lorem().Sentence(8),
		Price:       fake.Float64(2, 3, 9),
		Category:    category,
	}
}

func generateRandomMenuItemName(category string) string {
	items := map[string][]string{
		"espresso": {"Espresso", "Americano", "Cappuccino", "Latte", "Flat White", "Caffe Mocha", "Cortado", "Macchiato"},
		"brew":     {"Drip Coffee", "Pour Over", "French Press", "Cold Brew", "Nitro Cold Brew"},
		"tea":      {"Chai Latte", "Matcha Latte", "Earl Grey", "Green Tea", "Peppermint Tea"},
		"pastry":   {"Butter Croissant", "Blueberry Muffin", "Cinnamon Roll", "Banana Bread", "Almond Biscotti"},
	}
	if names, ok := items[category]; ok {
		return names[rand.Intn(len(names))]
	}
	return "House Special"
}

func generateRandomCategory() string {
	categories := []string{"espresso", "brew", "tea", "pastry"}
	return categories[rand.Intn(len(categories))]
}

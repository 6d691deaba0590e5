// Package catalog holds the static combo and drink data the storefront
// sells. It is defined at process start and seeded into the database so the
// API can serve it; nothing ever mutates it afterwards.
package catalog

import (
	"gorm.io/gorm"

	"github.com/brasacombo/storefront-app/models"
)

// Combos returns the combo catalog. Scarcity and countdown fields are
// advisory display attributes, not enforced limits.
func Combos() []models.Combo {
	return []models.Combo{
		{
			ID:            "1",
			Name:          "Combo Clássico",
			Description:   "Hambúrguer artesanal, batata frita crocante e refrigerante gelado. O favorito de sempre!",
			OriginalPrice: 32.90,
			Price:         24.90,
			ImageURL:      "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg?auto=compress&cs=tinysrgb&w=500",
			Badge:         "Mais Pedido",
			Rating:        4.8,
			ReviewCount:   324,
			HasCountdown:  true,
		},
		{
			ID:              "2",
			Name:            "Combo Bacon Supreme",
			Description:     "Hambúrguer duplo com bacon crocante, queijo cheddar, batata rústica e milkshake.",
			OriginalPrice:   45.90,
			Price:           35.90,
			ImageURL:        "https://images.pexels.com/photos/70497/pexels-photo-70497.jpeg?auto=compress&cs=tinysrgb&w=500",
			Badge:           "Promo Relâmpago",
			Rating:          4.9,
			ReviewCount:     189,
			IsLimited:       true,
			LimitedQuantity: 3,
		},
		{
			ID:            "3",
			Name:          "Combo Vegetariano",
			Description:   "Hambúrguer de grão-de-bico, batata doce assada, suco natural e sobremesa vegana.",
			OriginalPrice: 28.90,
			Price:         22.90,
			ImageURL:      "https://images.pexels.com/photos/1199957/pexels-photo-1199957.jpeg?auto=compress&cs=tinysrgb&w=500",
			Rating:        4.7,
			ReviewCount:   156,
		},
		{
			ID:            "4",
			Name:          "Combo Frango Crocante",
			Description:   "Frango empanado especial, batata temperada, molho barbecue e refrigerante.",
			OriginalPrice: 29.90,
			Price:         25.90,
			ImageURL:      "https://images.pexels.com/photos/2233348/pexels-photo-2233348.jpeg?auto=compress&cs=tinysrgb&w=500",
			Rating:        4.6,
			ReviewCount:   201,
			HasCountdown:  true,
		},
		{
			ID:              "5",
			Name:            "Combo Família",
			Description:     "2 hambúrguers, 2 porções de batata, 2 refrigerantes e sobremesa para compartilhar.",
			OriginalPrice:   75.90,
			Price:           59.90,
			ImageURL:        "https://images.pexels.com/photos/1633578/pexels-photo-1633578.jpeg?auto=compress&cs=tinysrgb&w=500",
			Badge:           "Oferta Especial",
			Rating:          4.8,
			ReviewCount:     98,
			IsLimited:       true,
			LimitedQuantity: 5,
		},
		{
			ID:            "6",
			Name:          "Combo Light",
			Description:   "Hambúrguer grelhado, salada fresca, batata assada e água com gás saborizada.",
			OriginalPrice: 26.90,
			Price:         21.90,
			ImageURL:      "https://images.pexels.com/photos/1640772/pexels-photo-1640772.jpeg?auto=compress&cs=tinysrgb&w=500",
			Rating:        4.5,
			ReviewCount:   143,
		},
	}
}

// Drinks returns the drink catalog.
func Drinks() []models.Drink {
	return []models.Drink{
		{
			ID:          "drink-1",
			Name:        "Coca-Cola Original",
			Description: "O clássico refrigerante que todo mundo ama, gelado e refrescante.",
			Price:       4.90,
			ImageURL:    "https://images.pexels.com/photos/50593/coca-cola-cold-drink-soft-drink-coke-50593.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    models.DrinkCategorySoda,
			Size:        "350ml",
			Temperature: "gelado",
			Rating:      4.9,
			ReviewCount: 1250,
			Badge:       "Favorito",
		},
		{
			ID:          "drink-2",
			Name:        "Guaraná Antarctica",
			Description: "Sabor único e brasileiro, feito com extrato da fruta guaraná.",
			Price:       4.50,
			ImageURL:    "https://images.pexels.com/photos/1292294/pexels-photo-1292294.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    models.DrinkCategorySoda,
			Size:        "350ml",
			Temperature: "gelado",
			Rating:      4.7,
			ReviewCount: 890,
		},
		{
			ID:          "drink-3",
			Name:        "Sprite Limão",
			Description: "Refrescante sabor limão, perfeito para acompanhar qualquer refeição.",
			Price:       4.90,
			ImageURL:    "https://images.pexels.com/photos/1292294/pexels-photo-1292294.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    models.DrinkCategorySoda,
			Size:        "350ml",
			Temperature: "gelado",
			Rating:      4.6,
			ReviewCount: 720,
		},
		{
			ID:          "drink-4",
			Name:        "Suco de Laranja Natural",
			Description: "Feito na hora com laranjas selecionadas, rico em vitamina C.",
			Price:       7.90,
			ImageURL:    "https://images.pexels.com/photos/96974/pexels-photo-96974.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    models.DrinkCategoryJuice,
			Size:        "300ml",
			Temperature: "natural",
			Rating:      4.8,
			ReviewCount: 456,
			Badge:       "Natural",
		},
		{
			ID:          "drink-5",
			Name:        "Suco Verde Detox",
			Description: "Couve, maçã, limão e gengibre. Perfeito para quem busca saúde.",
			Price:       9.90,
			ImageURL:    "https://images.pexels.com/photos/1337825/pexels-photo-1337825.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    models.DrinkCategoryJuice,
			Size:        "300ml",
			Temperature: "gelado",
			Rating:      4.5,
			ReviewCount: 234,
			Badge:       "Detox",
		},
		{
			ID:          "drink-6",
			Name:        "Suco de Manga",
			Description: "Cremoso e doce, feito com mangas maduras e gelado.",
			Price:       8.50,
			ImageURL:    "https://images.pexels.com/photos/1337825/pexels-photo-1337825.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    models.DrinkCategoryJuice,
			Size:        "300ml",
			Temperature: "gelado",
			Rating:      4.7,
			ReviewCount: 345,
		},
		{
			ID:             "drink-7",
			Name:           "Heineken Long Neck",
			Description:    "Cerveja premium holandesa, sabor equilibrado e refrescante.",
			Price:          8.90,
			ImageURL:       "https://images.pexels.com/photos/1552630/pexels-photo-1552630.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:       models.DrinkCategoryBeer,
			Size:           "330ml",
			Temperature:    "gelado",
			AlcoholContent: 5.0,
			Rating:         4.6,
			ReviewCount:    678,
		},
		{
			ID:             "drink-8",
			Name:           "Brahma Duplo Malte",
			Description:    "Cerveja brasileira encorpada, com sabor marcante e tradição.",
			Price:          6.90,
			ImageURL:       "https://images.pexels.com/photos/1552630/pexels-photo-1552630.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:       models.DrinkCategoryBeer,
			Size:           "350ml",
			Temperature:    "gelado",
			AlcoholContent: 4.8,
			Rating:         4.4,
			ReviewCount:    523,
			Badge:          "Nacional",
		},
		{
			ID:              "drink-9",
			Name:            "Stella Artois",
			Description:     "Cerveja belga premium, elegante e sofisticada.",
			Price:           9.90,
			ImageURL:        "https://images.pexels.com/photos/1552630/pexels-photo-1552630.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:        models.DrinkCategoryBeer,
			Size:            "330ml",
			Temperature:     "gelado",
			AlcoholContent:  5.2,
			Rating:          4.7,
			ReviewCount:     412,
			IsLimited:       true,
			LimitedQuantity: 8,
		},
	}
}

// Seed upserts the static catalog into the database so existing rows keep
// their prices in sync with the source data.
func Seed(db *gorm.DB) error {
	for _, combo := range Combos() {
		if err := db.Save(&combo).Error; err != nil {
			return err
		}
	}
	for _, drink := range Drinks() {
		if err := db.Save(&drink).Error; err != nil {
			return err
		}
	}
	return nil
}

package services

import "github.com/ghuser/plantcatalog/services/catalog/domain/models"

const samplePlantImage = "/placeholder.svg"

type samplePlant struct {
	name        string
	categories  []string
	price       float64
	description string
	inStock     bool
}

var samplePlants = []samplePlant{
	{"Money Plant", []string{"Indoor", "Air Purifying", "Home Decor"}, 399, "Easy to grow indoor plant that brings prosperity.", true},
	{"Snake Plant", []string{"Indoor", "Low Maintenance", "Air Purifying"}, 499, "Hardy indoor plant that requires minimal care.", true},
	{"Aloe Vera", []string{"Succulent", "Medicinal", "Indoor"}, 299, "Healing plant with numerous benefits.", true},
	{"Rose Bush", []string{"Flowering", "Outdoor", "Garden"}, 599, "Beautiful flowering plant for your garden.", false},
	{"Bonsai Tree", []string{"Indoor", "Decorative", "Premium"}, 2999, "Miniature tree for aesthetic appeal.", true},
	{"Cactus", []string{"Succulent", "Low Maintenance", "Indoor"}, 249, "Perfect plant for busy people.", true},
	{"Tulip Bulbs", []string{"Flowering", "Outdoor", "Seasonal"}, 199, "Beautiful spring flowers.", false},
	{"Fern", []string{"Indoor", "Shade Loving", "Humidity Loving"}, 349, "Lush green fern for indoor spaces.", true},
	{"Bamboo Plant", []string{"Indoor", "Lucky", "Low Light"}, 599, "Brings luck and prosperity to your home.", true},
	{"Lily", []string{"Flowering", "Fragrant", "Garden"}, 499, "Beautiful fragrant flowers for your garden.", true},
	{"Rubber Plant", []string{"Indoor", "Air Purifying", "Large"}, 899, "Large indoor plant with striking foliage.", true},
	{"Peace Lily", []string{"Indoor", "Flowering", "Air Purifying"}, 499, "Beautiful white flowers and air-purifying properties.", true},
	{"Jade Plant", []string{"Succulent", "Lucky", "Indoor"}, 349, "Symbol of good luck and prosperity.", true},
	{"Boston Fern", []string{"Indoor", "Hanging", "Humidity Loving"}, 449, "Perfect hanging plant for bathrooms and humid areas.", true},
}

// SamplePlants returns fresh creation params for the built-in demo catalog.
func SamplePlants() []models.NewPlantParams {
	out := make([]models.NewPlantParams, len(samplePlants))
	for i, sp := range samplePlants {
		price, inStock := sp.price, sp.inStock
		out[i] = models.NewPlantParams{
			Name:        sp.name,
			Price:       &price,
			Categories:  append([]string(nil), sp.categories...),
			Description: sp.description,
			Image:       samplePlantImage,
			InStock:     &inStock,
		}
	}
	return out
}

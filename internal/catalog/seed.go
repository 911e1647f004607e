package catalog

import "github.com/hitoshi/smartcatalog/internal/model"

// seedCategories は組み込みのカテゴリ構成。
func seedCategories() []model.Category {
	return []model.Category{
		{
			Main: "GROCERY",
			Subs: []string{"RICE", "OIL & GHEE", "SPICES", "TEA & COFFEE", "CEREALS", "NOODLES & PASTA"},
		},
		{
			Main: "TOILETRY",
			Subs: []string{"SHAMPOO", "SOAP", "DENTAL CARE", "BODY LOTION"},
		},
		{
			Main: "CONFECTIONERY",
			Subs: []string{"DRINKS & BEVERAGES", "CHOCOLATES", "BISCUITS", "SNACKS"},
		},
		{
			Main: "HOMECARE",
			Subs: []string{"LAUNDRY", "DISINFECTANT"},
		},
	}
}

// seedProducts は組み込みの商品データ。全商品が全価格区分の価格を定義する。
func seedProducts() []model.Product {
	return []model.Product{
		// GROCERY
		{
			ID:   "g1",
			Name: "Golden Sella Basmati",
			Prices: map[model.PriceTier]float64{
				model.TierStandard: 18.50, model.TierWholesale: 16.00, model.TierVIP: 14.50,
			},
			MainCategory:   "GROCERY",
			SubCategory:    "RICE",
			ImageURL:       "https://images.unsplash.com/photo-1586201375761-83865001e31c?q=80&w=400",
			Description:    "Extra long grain premium parboiled rice.",
			PackagingTypes: []string{"5kg Bag", "10kg Bag", "20kg Sack"},
		},
		{
			ID:   "g2",
			Name: "Pure Sunflower Oil",
			Prices: map[model.PriceTier]float64{
				model.TierStandard: 12.00, model.TierWholesale: 10.50, model.TierVIP: 9.00,
			},
			MainCategory:   "GROCERY",
			SubCategory:    "OIL & GHEE",
			ImageURL:       "https://images.unsplash.com/photo-1474979266404-7eaacbcd87c5?q=80&w=400",
			Description:    "High quality refined sunflower oil for cooking.",
			PackagingTypes: []string{"1L Bottle", "5L Jerrycan"},
		},
		{
			ID:   "g3",
			Name: "Organic Turmeric Powder",
			Prices: map[model.PriceTier]float64{
				model.TierStandard: 4.50, model.TierWholesale: 3.80, model.TierVIP: 3.20,
			},
			MainCategory:   "GROCERY",
			SubCategory:    "SPICES",
			ImageURL:       "https://images.unsplash.com/photo-1615485290382-441e4d049cb5?q=80&w=400",
			Description:    "100% pure organic ground turmeric.",
			PackagingTypes: []string{"100g Pouch", "500g Jar"},
		},
		{
			ID:   "g4",
			Name: "Arabica Coffee Beans",
			Prices: map[model.PriceTier]float64{
				model.TierStandard: 22.00, model.TierWholesale: 19.50, model.TierVIP: 17.00,
			},
			MainCategory:   "GROCERY",
			SubCategory:    "TEA & COFFEE",
			ImageURL:       "https://images.unsplash.com/photo-1559056199-641a0ac8b55e?q=80&w=400",
			Description:    "Medium roast hand-picked coffee beans.",
			PackagingTypes: []string{"250g Pack", "1kg Bag"},
		},

		// TOILETRY
		{
			ID:   "t1",
			Name: "Argan Oil Shampoo",
			Prices: map[model.PriceTier]float64{
				model.TierStandard: 14.00, model.TierWholesale: 12.00, model.TierVIP: 10.50,
			},
			MainCategory:   "TOILETRY",
			SubCategory:    "SHAMPOO",
			ImageURL:       "https://images.unsplash.com/photo-1535585209827-a15fcdbc4c2d?q=80&w=400",
			Description:    "Deep repair shampoo with Moroccan Argan oil.",
			PackagingTypes: []string{"400ml Bottle"},
		},
		{
			ID:   "t2",
			Name: "Ocean Mist Body Wash",
			Prices: map[model.PriceTier]float64{
				model.TierStandard: 8.50, model.TierWholesale: 7.20, model.TierVIP: 6.00,
			},
			MainCategory:   "TOILETRY",
			SubCategory:    "BODY LOTION",
			ImageURL:       "https://images.unsplash.com/photo-1559591937-e68fb3305540?q=80&w=400",
			Description:    "Refreshing body wash with mineral salts.",
			PackagingTypes: []string{"500ml Pump"},
		},
		{
			ID:   "t3",
			Name: "Charcoal Toothpaste",
			Prices: map[model.PriceTier]float64{
				model.TierStandard: 6.00, model.TierWholesale: 5.10, model.TierVIP: 4.50,
			},
			MainCategory:   "TOILETRY",
			SubCategory:    "DENTAL CARE",
			ImageURL:       "https://images.unsplash.com/photo-1559591937-e68fb3305540?q=80&w=400",
			Description:    "Natural whitening with activated charcoal.",
			PackagingTypes: []string{"75ml Tube"},
		},

		// CONFECTIONERY
		{
			ID:   "c1",
			Name: "Dark Cocoa Selection",
			Prices: map[model.PriceTier]float64{
				model.TierStandard: 5.50, model.TierWholesale: 4.80, model.TierVIP: 4.00,
			},
			MainCategory:   "CONFECTIONERY",
			SubCategory:    "CHOCOLATES",
			ImageURL:       "https://images.unsplash.com/photo-1548907040-4baa42d10919?q=80&w=400",
			Description:    "70% dark chocolate with sea salt flakes.",
			PackagingTypes: []string{"100g Bar", "Box of 12"},
		},
		{
			ID:   "c2",
			Name: "Sparkling Lemonade",
			Prices: map[model.PriceTier]float64{
				model.TierStandard: 2.50, model.TierWholesale: 2.10, model.TierVIP: 1.80,
			},
			MainCategory:   "CONFECTIONERY",
			SubCategory:    "DRINKS & BEVERAGES",
			ImageURL:       "https://images.unsplash.com/photo-1527661591475-527312dd65f5?q=80&w=400",
			Description:    "Carbonated drink with real lemon juice.",
			PackagingTypes: []string{"330ml Can", "6-Pack"},
		},
		{
			ID:   "c3",
			Name: "Butter Shortbread",
			Prices: map[model.PriceTier]float64{
				model.TierStandard: 7.00, model.TierWholesale: 6.20, model.TierVIP: 5.50,
			},
			MainCategory:   "CONFECTIONERY",
			SubCategory:    "BISCUITS",
			ImageURL:       "https://images.unsplash.com/photo-1558961363-fa8fdf82db35?q=80&w=400",
			Description:    "Traditional Scottish butter shortbread biscuits.",
			PackagingTypes: []string{"200g Box"},
		},

		// HOMECARE
		{
			ID:   "h1",
			Name: "Bio-Active Laundry Pods",
			Prices: map[model.PriceTier]float64{
				model.TierStandard: 19.00, model.TierWholesale: 16.50, model.TierVIP: 14.00,
			},
			MainCategory:   "HOMECARE",
			SubCategory:    "LAUNDRY",
			ImageURL:       "https://images.unsplash.com/photo-1610557892470-55d9e80c0bce?q=80&w=400",
			Description:    "Concentrated laundry pods for tough stains.",
			PackagingTypes: []string{"30 Pods", "60 Pods Pack"},
		},
	}
}

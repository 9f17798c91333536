package catalog

import "retreat/internal/domain"

// Default returns the built-in catalog used when no database is configured.
func Default() *Catalog {
	return &Catalog{
		Packages: []domain.Package{
			{
				ID:                   "detox-renewal",
				Name:                 "Detox & Renewal",
				Description:          "Juice cleanses, guided fasting and daily lymphatic treatments.",
				BasePrice:            200,
				Type:                 "detox",
				Image:                "/images/packages/detox.jpg",
				IncludesStandardRoom: true,
			},
			{
				ID:                   "yoga-immersion",
				Name:                 "Yoga Immersion",
				Description:          "Two daily practices, pranayama and evening restorative sessions.",
				BasePrice:            180,
				Type:                 "yoga",
				Image:                "/images/packages/yoga.jpg",
				IncludesStandardRoom: true,
			},
			{
				ID:                   "mindful-escape",
				Name:                 "Mindful Escape",
				Description:          "Meditation, forest walks and journaling workshops.",
				BasePrice:            150,
				Type:                 "mindfulness",
				Image:                "/images/packages/mindful.jpg",
				IncludesStandardRoom: false,
			},
			{
				ID:                   "spa-luxury",
				Name:                 "Spa Luxury",
				Description:          "Thermal circuit access with a signature treatment every day.",
				BasePrice:            250,
				Type:                 "spa",
				Image:                "/images/packages/spa.jpg",
				IncludesStandardRoom: true,
			},
		},
		Rooms: []domain.Room{
			{
				ID:          "garden-single",
				Type:        domain.RoomTypeSingle,
				Name:        "Garden Single",
				Description: "Queen bed with a private patio onto the herb garden.",
				Price:       130,
				Image:       "/images/rooms/single.jpg",
				IsStandard:  true,
			},
			{
				ID:          "valley-deluxe",
				Type:        domain.RoomTypeDeluxe,
				Name:        "Valley Deluxe",
				Description: "King bed, soaking tub and valley views.",
				Price:       200,
				Image:       "/images/rooms/deluxe.jpg",
			},
			{
				ID:          "summit-suite",
				Type:        domain.RoomTypeSuite,
				Name:        "Summit Suite",
				Description: "Separate lounge, private sauna and wraparound terrace.",
				Price:       320,
				Image:       "/images/rooms/suite.jpg",
			},
		},
		AddOnCategories: []domain.AddOnCategory{
			{
				ID:   "spa-treatments",
				Name: "Spa Treatments",
				Items: []domain.AddOnItem{
					{ID: "deep-tissue-massage", Name: "Deep Tissue Massage", Description: "60 minute full body massage.", Price: 80, Quantity: 1},
					{ID: "facial", Name: "Botanical Facial", Description: "Cleanse, mask and lymphatic drainage.", Price: 65, Quantity: 1},
					{ID: "hot-stone", Name: "Hot Stone Therapy", Description: "Basalt stone massage.", Price: 95, Quantity: 1},
				},
			},
			{
				ID:   "wellness-activities",
				Name: "Wellness Activities",
				Items: []domain.AddOnItem{
					{ID: "private-yoga", Name: "Private Yoga", Description: "One-to-one session with a senior instructor.", Price: 50, Quantity: 1},
					{ID: "sound-bath", Name: "Sound Bath", Description: "Gong and singing bowl meditation.", Price: 35, Quantity: 1},
					{ID: "nutrition-consult", Name: "Nutrition Consultation", Description: "Personal plan with our dietitian.", Price: 70, Quantity: 1},
				},
			},
			{
				ID:   "dining",
				Name: "Dining",
				Items: []domain.AddOnItem{
					{ID: "chefs-table", Name: "Chef's Table Dinner", Description: "Seven course seasonal tasting menu.", Price: 45, Quantity: 1},
					{ID: "juice-cleanse", Name: "Juice Cleanse Day", Description: "Six cold-pressed juices.", Price: 30, Quantity: 1},
				},
			},
		},
		RoomAddOns: []domain.RoomAddOn{
			{ID: "champagne", Name: "Champagne on Arrival", Description: "Chilled bottle waiting in your room.", Price: 60, Icon: "wine"},
			{ID: "late-checkout", Name: "Late Checkout", Description: "Keep your room until 4pm.", Price: 40, Icon: "clock"},
			{ID: "flowers", Name: "Fresh Flowers", Description: "Seasonal arrangement.", Price: 35, Icon: "flower"},
			{ID: "airport-transfer", Name: "Airport Transfer", Description: "Private car both ways.", Price: 75, Icon: "car"},
		},
	}
}

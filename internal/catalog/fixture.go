package catalog

import "github.com/aryangupta0810/ecart-backend/pkg/db/models"

// The fixture stands in for a real product database. Prices are minor units.

func fixtureProducts() []models.Product {
	return []models.Product{
		{
			ID:                  "1",
			Title:               "Classic Denim Jacket",
			Description:         "A timeless denim jacket perfect for any casual occasion. Made from premium denim with a comfortable fit.",
			PriceCents:          6749,
			CompareAtPriceCents: i64Ptr(8999),
			Images: []string{
				"https://images.unsplash.com/photo-1576995853123-5a89c7f02c73?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1576995853123-5a89c7f02c73?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "1-1", ProductID: "1", Title: "Small", PriceCents: 6749, Available: true, Size: strPtr("S"), Position: 0},
				{ID: "1-2", ProductID: "1", Title: "Medium", PriceCents: 6749, Available: true, Size: strPtr("M"), Position: 1},
				{ID: "1-3", ProductID: "1", Title: "Large", PriceCents: 6749, Available: true, Size: strPtr("L"), Position: 2},
			},
			Category:    "Outerwear",
			Tags:        []string{"denim", "casual", "jacket", "classic"},
			Available:   true,
			Rating:      4.8,
			ReviewCount: 127,
		},
		{
			ID:          "2",
			Title:       "Sustainable Cotton T-Shirt",
			Description: "Eco-friendly cotton t-shirt made from organic materials. Soft, breathable, and perfect for everyday wear.",
			PriceCents:  2249,
			Images: []string{
				"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "2-1", ProductID: "2", Title: "Small", PriceCents: 2249, Available: true, Size: strPtr("S"), Color: strPtr("White"), Position: 0},
				{ID: "2-2", ProductID: "2", Title: "Medium", PriceCents: 2249, Available: true, Size: strPtr("M"), Color: strPtr("White"), Position: 1},
				{ID: "2-3", ProductID: "2", Title: "Large", PriceCents: 2249, Available: true, Size: strPtr("L"), Color: strPtr("White"), Position: 2},
			},
			Category:    "Tops",
			Tags:        []string{"cotton", "sustainable", "basic", "casual"},
			Available:   true,
			Rating:      4.6,
			ReviewCount: 89,
		},
		{
			ID:          "3",
			Title:       "Elegant Blouse",
			Description: "A sophisticated blouse perfect for professional settings. Made from high-quality silk blend with a flattering cut.",
			PriceCents:  9749,
			Images: []string{
				"https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "3-1", ProductID: "3", Title: "Small", PriceCents: 9749, Available: true, Size: strPtr("S"), Color: strPtr("Cream"), Position: 0},
				{ID: "3-2", ProductID: "3", Title: "Medium", PriceCents: 9749, Available: true, Size: strPtr("M"), Color: strPtr("Cream"), Position: 1},
				{ID: "3-3", ProductID: "3", Title: "Large", PriceCents: 9749, Available: true, Size: strPtr("L"), Color: strPtr("Cream"), Position: 2},
			},
			Category:    "Tops",
			Tags:        []string{"blouse", "professional", "elegant", "silk"},
			Available:   true,
			Rating:      4.9,
			ReviewCount: 73,
		},
		{
			ID:          "4",
			Title:       "High-Waisted Jeans",
			Description: "Trendy high-waisted jeans with a perfect fit. Stretchy denim that flatters every body type.",
			PriceCents:  5249,
			Images: []string{
				"https://images.unsplash.com/photo-1542272604-787c3835535d?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1542272604-787c3835535d?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "4-1", ProductID: "4", Title: "26", PriceCents: 5249, Available: true, Size: strPtr("26"), Position: 0},
				{ID: "4-2", ProductID: "4", Title: "28", PriceCents: 5249, Available: true, Size: strPtr("28"), Position: 1},
				{ID: "4-3", ProductID: "4", Title: "30", PriceCents: 5249, Available: true, Size: strPtr("30"), Position: 2},
			},
			Category:    "Bottoms",
			Tags:        []string{"jeans", "high-waisted", "trendy", "stretchy"},
			Available:   true,
			Rating:      4.5,
			ReviewCount: 94,
		},
		{
			ID:                  "5",
			Title:               "Versatile Sneakers",
			Description:         "Comfortable and stylish sneakers perfect for both casual and athletic wear. Lightweight design with excellent support.",
			PriceCents:          5999,
			CompareAtPriceCents: i64Ptr(7499),
			Images: []string{
				"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "5-1", ProductID: "5", Title: "US 7", PriceCents: 5999, Available: true, Size: strPtr("7"), Position: 0},
				{ID: "5-2", ProductID: "5", Title: "US 8", PriceCents: 5999, Available: true, Size: strPtr("8"), Position: 1},
				{ID: "5-3", ProductID: "5", Title: "US 9", PriceCents: 5999, Available: true, Size: strPtr("9"), Position: 2},
			},
			Category:    "Footwear",
			Tags:        []string{"sneakers", "comfortable", "versatile", "athletic"},
			Available:   true,
			Rating:      4.7,
			ReviewCount: 156,
		},
		{
			ID:                  "6",
			Title:               "Premium Leather Boots",
			Description:         "Handcrafted leather boots with superior comfort and durability. Perfect for both casual and formal occasions.",
			PriceCents:          12499,
			CompareAtPriceCents: i64Ptr(15999),
			Images: []string{
				"https://images.unsplash.com/photo-1549298916-b41d501d3772?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1549298916-b41d501d3772?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "6-1", ProductID: "6", Title: "US 8", PriceCents: 12499, Available: true, Size: strPtr("8"), Position: 0},
				{ID: "6-2", ProductID: "6", Title: "US 9", PriceCents: 12499, Available: true, Size: strPtr("9"), Position: 1},
				{ID: "6-3", ProductID: "6", Title: "US 10", PriceCents: 12499, Available: true, Size: strPtr("10"), Position: 2},
			},
			Category:    "Footwear",
			Tags:        []string{"boots", "leather", "premium", "formal"},
			Available:   true,
			Rating:      4.9,
			ReviewCount: 89,
		},
		{
			ID:          "7",
			Title:       "Running Shoes",
			Description: "High-performance running shoes with advanced cushioning technology. Ideal for marathon training and daily runs.",
			PriceCents:  8499,
			Images: []string{
				"https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "7-1", ProductID: "7", Title: "US 7", PriceCents: 8499, Available: true, Size: strPtr("7"), Position: 0},
				{ID: "7-2", ProductID: "7", Title: "US 8", PriceCents: 8499, Available: true, Size: strPtr("8"), Position: 1},
				{ID: "7-3", ProductID: "7", Title: "US 9", PriceCents: 8499, Available: true, Size: strPtr("9"), Position: 2},
			},
			Category:    "Footwear",
			Tags:        []string{"running", "athletic", "performance", "comfortable"},
			Available:   true,
			Rating:      4.8,
			ReviewCount: 203,
		},
		{
			ID:                  "8",
			Title:               "Smart Fitness Watch",
			Description:         "Advanced fitness tracking with heart rate monitoring, GPS, and 7-day battery life. Water-resistant and stylish design.",
			PriceCents:          18999,
			CompareAtPriceCents: i64Ptr(22999),
			Images: []string{
				"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "8-1", ProductID: "8", Title: "42mm Black", PriceCents: 18999, Available: true, Size: strPtr("42mm"), Color: strPtr("Black"), Position: 0},
				{ID: "8-2", ProductID: "8", Title: "42mm Silver", PriceCents: 18999, Available: true, Size: strPtr("42mm"), Color: strPtr("Silver"), Position: 1},
				{ID: "8-3", ProductID: "8", Title: "46mm Black", PriceCents: 18999, Available: true, Size: strPtr("46mm"), Color: strPtr("Black"), Position: 2},
			},
			Category:    "Watches",
			Tags:        []string{"smartwatch", "fitness", "tracking", "modern"},
			Available:   true,
			Rating:      4.7,
			ReviewCount: 156,
		},
		{
			ID:          "9",
			Title:       "Classic Analog Watch",
			Description: "Timeless analog watch with premium stainless steel case and genuine leather strap. Perfect for everyday elegance.",
			PriceCents:  8999,
			Images: []string{
				"https://images.unsplash.com/photo-1434056886845-d40ae3822e70?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1434056886845-d40ae3822e70?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "9-1", ProductID: "9", Title: "40mm Brown", PriceCents: 8999, Available: true, Size: strPtr("40mm"), Color: strPtr("Brown"), Position: 0},
				{ID: "9-2", ProductID: "9", Title: "40mm Black", PriceCents: 8999, Available: true, Size: strPtr("40mm"), Color: strPtr("Black"), Position: 1},
				{ID: "9-3", ProductID: "9", Title: "42mm Brown", PriceCents: 8999, Available: true, Size: strPtr("42mm"), Color: strPtr("Brown"), Position: 2},
			},
			Category:    "Watches",
			Tags:        []string{"analog", "classic", "elegant", "leather"},
			Available:   true,
			Rating:      4.6,
			ReviewCount: 94,
		},
		{
			ID:          "10",
			Title:       "Luxury Chronograph Watch",
			Description: "Premium chronograph watch with automatic movement and sapphire crystal. A statement piece for the sophisticated collector.",
			PriceCents:  45999,
			Images: []string{
				"https://images.unsplash.com/photo-1587836374828-4dbafa94cf0e?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1587836374828-4dbafa94cf0e?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "10-1", ProductID: "10", Title: "42mm Silver", PriceCents: 45999, Available: true, Size: strPtr("42mm"), Color: strPtr("Silver"), Position: 0},
				{ID: "10-2", ProductID: "10", Title: "42mm Gold", PriceCents: 45999, Available: true, Size: strPtr("42mm"), Color: strPtr("Gold"), Position: 1},
			},
			Category:    "Watches",
			Tags:        []string{"luxury", "chronograph", "automatic", "premium"},
			Available:   true,
			Rating:      4.9,
			ReviewCount: 67,
		},
		{
			ID:                  "11",
			Title:               "Ultrabook Laptop",
			Description:         "Slim and powerful ultrabook with 13-inch display, Intel i7 processor, 16GB RAM, and 512GB SSD. Perfect for work and creativity.",
			PriceCents:          74999,
			CompareAtPriceCents: i64Ptr(89999),
			Images: []string{
				"https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "11-1", ProductID: "11", Title: "i7/16GB/512GB", PriceCents: 74999, Available: true, Size: strPtr("13-inch"), Color: strPtr("Silver"), Position: 0},
				{ID: "11-2", ProductID: "11", Title: "i7/16GB/1TB", PriceCents: 84999, Available: true, Size: strPtr("13-inch"), Color: strPtr("Silver"), Position: 1},
			},
			Category:    "Laptops",
			Tags:        []string{"ultrabook", "portable", "powerful", "business"},
			Available:   true,
			Rating:      4.8,
			ReviewCount: 234,
		},
		{
			ID:          "12",
			Title:       "Gaming Laptop",
			Description: "High-performance gaming laptop with RTX 4060 graphics, AMD Ryzen 7 processor, 16GB RAM, and 1TB SSD. Built for gamers.",
			PriceCents:  89999,
			Images: []string{
				"https://images.unsplash.com/photo-1603302576837-37561b2e2302?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1603302576837-37561b2e2302?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "12-1", ProductID: "12", Title: "Ryzen 7/16GB/1TB", PriceCents: 89999, Available: true, Size: strPtr("15.6-inch"), Color: strPtr("Black"), Position: 0},
				{ID: "12-2", ProductID: "12", Title: "Ryzen 7/32GB/1TB", PriceCents: 99999, Available: true, Size: strPtr("15.6-inch"), Color: strPtr("Black"), Position: 1},
			},
			Category:    "Laptops",
			Tags:        []string{"gaming", "performance", "rtx", "gaming"},
			Available:   true,
			Rating:      4.7,
			ReviewCount: 189,
		},
		{
			ID:          "13",
			Title:       "Student Laptop",
			Description: "Affordable laptop perfect for students with Intel i5 processor, 8GB RAM, and 256GB SSD. Lightweight and durable.",
			PriceCents:  39999,
			Images: []string{
				"https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "13-1", ProductID: "13", Title: "i5/8GB/256GB", PriceCents: 39999, Available: true, Size: strPtr("14-inch"), Color: strPtr("Silver"), Position: 0},
				{ID: "13-2", ProductID: "13", Title: "i5/8GB/512GB", PriceCents: 44999, Available: true, Size: strPtr("14-inch"), Color: strPtr("Silver"), Position: 1},
			},
			Category:    "Laptops",
			Tags:        []string{"student", "affordable", "lightweight", "durable"},
			Available:   true,
			Rating:      4.5,
			ReviewCount: 156,
		},
		{
			ID:                  "14",
			Title:               "Professional Makeup Palette",
			Description:         "Complete eyeshadow palette with 18 highly pigmented shades. Perfect for creating both natural and dramatic looks.",
			PriceCents:          2499,
			CompareAtPriceCents: i64Ptr(3499),
			Images: []string{
				"https://images.unsplash.com/photo-1512496015851-a90fb38ba796?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1512496015851-a90fb38ba796?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "14-1", ProductID: "14", Title: "Classic", PriceCents: 2499, Available: true, Size: strPtr("18 shades"), Color: strPtr("Multi"), Position: 0},
				{ID: "14-2", ProductID: "14", Title: "Nude", PriceCents: 2499, Available: true, Size: strPtr("18 shades"), Color: strPtr("Nude"), Position: 1},
			},
			Category:    "Makeup",
			Tags:        []string{"eyeshadow", "palette", "professional", "pigmented"},
			Available:   true,
			Rating:      4.6,
			ReviewCount: 203,
		},
		{
			ID:          "15",
			Title:       "Liquid Foundation",
			Description: "Long-lasting liquid foundation with buildable coverage. Suitable for all skin types with SPF 30 protection.",
			PriceCents:  1799,
			Images: []string{
				"https://images.unsplash.com/photo-1556228720-195a672e8a03?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1556228720-195a672e8a03?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "15-1", ProductID: "15", Title: "Light", PriceCents: 1799, Available: true, Size: strPtr("30ml"), Color: strPtr("Light"), Position: 0},
				{ID: "15-2", ProductID: "15", Title: "Medium", PriceCents: 1799, Available: true, Size: strPtr("30ml"), Color: strPtr("Medium"), Position: 1},
				{ID: "15-3", ProductID: "15", Title: "Dark", PriceCents: 1799, Available: true, Size: strPtr("30ml"), Color: strPtr("Dark"), Position: 2},
			},
			Category:    "Makeup",
			Tags:        []string{"foundation", "long-lasting", "spf", "buildable"},
			Available:   true,
			Rating:      4.7,
			ReviewCount: 178,
		},
		{
			ID:          "16",
			Title:       "Matte Lipstick Set",
			Description: "Set of 6 matte lipsticks in trending shades. Long-wearing formula with intense color payoff.",
			PriceCents:  1499,
			Images: []string{
				"https://images.unsplash.com/photo-1586495777744-4413f21062fa?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1586495777744-4413f21062fa?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "16-1", ProductID: "16", Title: "Classic Set", PriceCents: 1499, Available: true, Size: strPtr("6 pieces"), Color: strPtr("Multi"), Position: 0},
				{ID: "16-2", ProductID: "16", Title: "Bold Set", PriceCents: 1499, Available: true, Size: strPtr("6 pieces"), Color: strPtr("Multi"), Position: 1},
			},
			Category:    "Makeup",
			Tags:        []string{"lipstick", "matte", "set", "long-wearing"},
			Available:   true,
			Rating:      4.8,
			ReviewCount: 145,
		},
		{
			ID:          "17",
			Title:       "Makeup Brush Set",
			Description: "Professional 12-piece makeup brush set with soft synthetic bristles. Perfect for flawless application.",
			PriceCents:  1999,
			Images: []string{
				"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "17-1", ProductID: "17", Title: "12-piece Set", PriceCents: 1999, Available: true, Size: strPtr("12 pieces"), Color: strPtr("Black"), Position: 0},
			},
			Category:    "Makeup",
			Tags:        []string{"brushes", "professional", "synthetic", "complete"},
			Available:   true,
			Rating:      4.5,
			ReviewCount: 167,
		},
		{
			ID:                  "18",
			Title:               "MacBook Air M2",
			Description:         "Apple MacBook Air with M2 chip, 13.6-inch Liquid Retina display, 8GB RAM, and 256GB SSD. Ultra-portable and powerful.",
			PriceCents:          99999,
			CompareAtPriceCents: i64Ptr(119999),
			Images: []string{
				"https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "18-1", ProductID: "18", Title: "M2/8GB/256GB", PriceCents: 99999, Available: true, Size: strPtr("13.6-inch"), Color: strPtr("Space Gray"), Position: 0},
				{ID: "18-2", ProductID: "18", Title: "M2/8GB/512GB", PriceCents: 114999, Available: true, Size: strPtr("13.6-inch"), Color: strPtr("Space Gray"), Position: 1},
			},
			Category:    "Laptops",
			Tags:        []string{"macbook", "apple", "m2", "ultrabook", "premium"},
			Available:   true,
			Rating:      4.9,
			ReviewCount: 312,
		},
		{
			ID:                  "19",
			Title:               "Dell XPS 13",
			Description:         "Premium ultrabook with Intel i7 processor, 16GB RAM, 512GB SSD, and 13.4-inch InfinityEdge display. Perfect for professionals.",
			PriceCents:          84999,
			CompareAtPriceCents: i64Ptr(99999),
			Images: []string{
				"https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "19-1", ProductID: "19", Title: "i7/16GB/512GB", PriceCents: 84999, Available: true, Size: strPtr("13.4-inch"), Color: strPtr("Platinum Silver"), Position: 0},
				{ID: "19-2", ProductID: "19", Title: "i7/16GB/1TB", PriceCents: 94999, Available: true, Size: strPtr("13.4-inch"), Color: strPtr("Platinum Silver"), Position: 1},
			},
			Category:    "Laptops",
			Tags:        []string{"dell", "xps", "ultrabook", "professional", "premium"},
			Available:   true,
			Rating:      4.7,
			ReviewCount: 189,
		},
		{
			ID:                  "20",
			Title:               "Wireless Gaming Mouse",
			Description:         "High-precision wireless gaming mouse with 25K DPI sensor, RGB lighting, and 70-hour battery life. Perfect for gamers and professionals.",
			PriceCents:          5999,
			CompareAtPriceCents: i64Ptr(7999),
			Images: []string{
				"https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "20-1", ProductID: "20", Title: "Black", PriceCents: 5999, Available: true, Size: strPtr("Standard"), Color: strPtr("Black"), Position: 0},
				{ID: "20-2", ProductID: "20", Title: "White", PriceCents: 5999, Available: true, Size: strPtr("Standard"), Color: strPtr("White"), Position: 1},
			},
			Category:    "Computer Accessories",
			Tags:        []string{"mouse", "wireless", "gaming", "rgb", "high-dpi"},
			Available:   true,
			Rating:      4.6,
			ReviewCount: 234,
		},
		{
			ID:                  "21",
			Title:               "Mechanical Keyboard",
			Description:         "Premium mechanical keyboard with Cherry MX Blue switches, RGB backlighting, and aluminum frame. Ideal for typing and gaming.",
			PriceCents:          8999,
			CompareAtPriceCents: i64Ptr(11999),
			Images: []string{
				"https://images.unsplash.com/photo-1541140532154-b024d705b90a?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1541140532154-b024d705b90a?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "21-1", ProductID: "21", Title: "Cherry MX Blue", PriceCents: 8999, Available: true, Size: strPtr("Full-size"), Color: strPtr("Black"), Position: 0},
				{ID: "21-2", ProductID: "21", Title: "Cherry MX Red", PriceCents: 8999, Available: true, Size: strPtr("Full-size"), Color: strPtr("Black"), Position: 1},
			},
			Category:    "Computer Accessories",
			Tags:        []string{"keyboard", "mechanical", "cherry-mx", "rgb", "gaming"},
			Available:   true,
			Rating:      4.8,
			ReviewCount: 167,
		},
		{
			ID:          "22",
			Title:       "The Great Gatsby",
			Description: "F. Scott Fitzgerald's masterpiece about the Jazz Age. A beautifully bound hardcover edition with gold foil accents.",
			PriceCents:  899,
			Images: []string{
				"https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "22-1", ProductID: "22", Title: "Hardcover", PriceCents: 899, Available: true, Size: strPtr("Standard"), Color: strPtr("Blue"), Position: 0},
			},
			Category:    "Books",
			Tags:        []string{"classic", "fiction", "hardcover", "literature", "jazz-age"},
			Available:   true,
			Rating:      4.9,
			ReviewCount: 456,
		},
		{
			ID:          "23",
			Title:       "1984 by George Orwell",
			Description: "George Orwell's dystopian masterpiece. A thought-provoking novel about totalitarianism and surveillance society.",
			PriceCents:  699,
			Images: []string{
				"https://images.unsplash.com/photo-1543002588-bfa74002ed7e?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1543002588-bfa74002ed7e?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "23-1", ProductID: "23", Title: "Paperback", PriceCents: 699, Available: true, Size: strPtr("Standard"), Color: strPtr("Red"), Position: 0},
			},
			Category:    "Books",
			Tags:        []string{"dystopian", "classic", "fiction", "political", "paperback"},
			Available:   true,
			Rating:      4.8,
			ReviewCount: 389,
		},
		{
			ID:                  "24",
			Title:               "Harry Potter Complete Set",
			Description:         "Complete 7-book set of J.K. Rowling's Harry Potter series. Beautifully illustrated hardcover editions in a collector's box.",
			PriceCents:          4999,
			CompareAtPriceCents: i64Ptr(6999),
			Images: []string{
				"https://images.unsplash.com/photo-1603871165848-0aa92c869fa1?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1603871165848-0aa92c869fa1?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "24-1", ProductID: "24", Title: "Complete Set", PriceCents: 4999, Available: true, Size: strPtr("7 books"), Color: strPtr("Multi"), Position: 0},
			},
			Category:    "Books",
			Tags:        []string{"fantasy", "harry-potter", "complete-set", "hardcover", "collector"},
			Available:   true,
			Rating:      4.9,
			ReviewCount: 567,
		},
		{
			ID:                  "25",
			Title:               "Modern Table Lamp",
			Description:         "Contemporary LED table lamp with adjustable brightness and warm white light. Perfect for bedside or desk use.",
			PriceCents:          3499,
			CompareAtPriceCents: i64Ptr(4499),
			Images: []string{
				"https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "25-1", ProductID: "25", Title: "Black", PriceCents: 3499, Available: true, Size: strPtr("Standard"), Color: strPtr("Black"), Position: 0},
				{ID: "25-2", ProductID: "25", Title: "White", PriceCents: 3499, Available: true, Size: strPtr("Standard"), Color: strPtr("White"), Position: 1},
			},
			Category:    "Home Accessories",
			Tags:        []string{"lamp", "led", "modern", "adjustable", "bedside"},
			Available:   true,
			Rating:      4.5,
			ReviewCount: 123,
		},
		{
			ID:          "26",
			Title:       "Ceramic Vase Set",
			Description: "Set of 3 handcrafted ceramic vases in different sizes. Perfect for flowers or as decorative pieces.",
			PriceCents:  2499,
			Images: []string{
				"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "26-1", ProductID: "26", Title: "3-piece Set", PriceCents: 2499, Available: true, Size: strPtr("Various"), Color: strPtr("White"), Position: 0},
			},
			Category:    "Home Accessories",
			Tags:        []string{"vase", "ceramic", "decorative", "handcrafted", "set"},
			Available:   true,
			Rating:      4.6,
			ReviewCount: 89,
		},
		{
			ID:          "27",
			Title:       "Wall Clock",
			Description: "Minimalist wall clock with silent movement and clean design. Available in multiple sizes and colors.",
			PriceCents:  1999,
			Images: []string{
				"https://images.unsplash.com/photo-1563861826100-9cb868fdbe1c?w=500&h=600&fit=crop",
				"https://images.unsplash.com/photo-1563861826100-9cb868fdbe1c?w=500&h=600&fit=crop&crop=face",
			},
			Variants: []models.Variant{
				{ID: "27-1", ProductID: "27", Title: "30cm", PriceCents: 1999, Available: true, Size: strPtr("30cm"), Color: strPtr("Black"), Position: 0},
				{ID: "27-2", ProductID: "27", Title: "40cm", PriceCents: 2499, Available: true, Size: strPtr("40cm"), Color: strPtr("Black"), Position: 1},
			},
			Category:    "Home Accessories",
			Tags:        []string{"clock", "wall-clock", "minimalist", "silent", "modern"},
			Available:   true,
			Rating:      4.4,
			ReviewCount: 156,
		},
	}
}

func fixtureCollections() []models.Collection {
	return []models.Collection{
		{ID: "1", Title: "New Arrivals", Description: "Discover the latest trends and newest additions to our collection.", Image: "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=400&h=300&fit=crop", ProductCount: 27},
		{ID: "2", Title: "Fashion & Clothing", Description: "Stylish clothing for every occasion, from casual to formal wear.", Image: "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=400&h=300&fit=crop", ProductCount: 4},
		{ID: "3", Title: "Footwear Collection", Description: "Comfortable and stylish shoes for every activity and style preference.", Image: "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=400&h=300&fit=crop", ProductCount: 3},
		{ID: "4", Title: "Watches & Accessories", Description: "Elegant timepieces and smart accessories to complement your style.", Image: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=300&fit=crop", ProductCount: 3},
		{ID: "5", Title: "Laptops & Tech", Description: "High-performance laptops for work, gaming, and creativity.", Image: "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=400&h=300&fit=crop", ProductCount: 5},
		{ID: "6", Title: "Beauty & Makeup", Description: "Professional makeup and beauty essentials for every look.", Image: "https://images.unsplash.com/photo-1512496015851-a90fb38ba796?w=400&h=300&fit=crop", ProductCount: 4},
		{ID: "7", Title: "Computer Accessories", Description: "High-quality peripherals and accessories for your computer setup.", Image: "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=400&h=300&fit=crop", ProductCount: 2},
		{ID: "8", Title: "Books & Literature", Description: "Classic novels, contemporary fiction, and educational books for all ages.", Image: "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400&h=300&fit=crop", ProductCount: 3},
		{ID: "9", Title: "Home & Living", Description: "Beautiful home accessories and decorative items to enhance your living space.", Image: "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=400&h=300&fit=crop", ProductCount: 3},
	}
}

func strPtr(s string) *string { return &s }

func i64Ptr(v int64) *int64 { return &v }

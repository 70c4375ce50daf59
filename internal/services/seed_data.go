package services

func ptr[T any](v T) *T {
	return &v
}

// seedProducts is the fixture catalog loaded by RunSeed.
var seedProducts = []CreateProductInput{
	{
		Title:       "Men's Chill Crew Neck Sweatshirt",
		Description: ptr("Introducing the Tesla Chill Collection. The Men's Chill Crew Neck Sweatshirt has a premium, heavyweight exterior and soft fleece interior for comfort in any season."),
		Price:       ptr(75.0),
		Stock:       ptr(7),
		Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
		Gender:      "men",
		Tags:        []string{"sweatshirt"},
		Images:      []string{"1740176-00-A_0_2000.jpg", "1740176-00-A_1.jpg"},
	},
	{
		Title:       "Men's Quilted Shirt Jacket",
		Description: ptr("The Men's Quilted Shirt Jacket features a uniquely fit, quilted design for warmth and mobility in cold weather seasons."),
		Price:       ptr(200.0),
		Stock:       ptr(5),
		Sizes:       []string{"XS", "S", "M", "XL", "XXL"},
		Gender:      "men",
		Tags:        []string{"jacket"},
		Images:      []string{"1740507-00-A_0_2000.jpg", "1740507-00-A_1.jpg"},
	},
	{
		Title:       "Men's Raven Lightweight Zip Up Bomber Jacket",
		Description: ptr("Introducing the Tesla Raven Collection. The Men's Raven Lightweight Zip Up Bomber has a premium, modern silhouette made from a sustainable bamboo cotton blend."),
		Price:       ptr(130.0),
		Stock:       ptr(10),
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Gender:      "men",
		Tags:        []string{"shirt"},
		Images:      []string{"1740250-00-A_0_2000.jpg", "1740250-00-A_1.jpg"},
	},
	{
		Title:       "Men's Turbine Long Sleeve Tee",
		Description: ptr("Introducing the Tesla Turbine Collection. Designed for style, comfort and everyday lifestyle, the Men's Turbine Long Sleeve Tee features a subtle, water-based T logo."),
		Price:       ptr(45.0),
		Stock:       ptr(50),
		Sizes:       []string{"XS", "S", "M", "L"},
		Gender:      "men",
		Tags:        []string{"shirt"},
		Images:      []string{"1740280-00-A_0_2000.jpg", "1740280-00-A_1.jpg"},
	},
	{
		Title:       "Men's Turbine Short Sleeve Tee",
		Description: ptr("Introducing the Tesla Turbine Collection. Designed for style, comfort and everyday lifestyle, the Men's Turbine Short Sleeve Tee features a subtle, water-based Tesla wordmark."),
		Price:       ptr(40.0),
		Stock:       ptr(50),
		Sizes:       []string{"M", "L", "XL", "XXL"},
		Gender:      "men",
		Tags:        []string{"shirt"},
		Images:      []string{"1741416-00-A_0_2000.jpg", "1741416-00-A_1.jpg"},
	},
	{
		Title:       "Men's Cybertruck Owl Tee",
		Description: ptr("Designed for comfort, the Cybertruck Owl Tee is made from 100% cotton and features our signature Cybertruck icon on the back."),
		Price:       ptr(35.0),
		Stock:       ptr(0),
		Sizes:       []string{"M", "L", "XL", "XXL"},
		Gender:      "men",
		Tags:        []string{"shirt"},
		Images:      []string{"7654393-00-A_2_2000.jpg", "7654393-00-A_3.jpg"},
	},
	{
		Title:       "Women's Cropped Puffer Jacket",
		Description: ptr("The Women's Cropped Puffer Jacket features a uniquely cropped silhouette for the perfect, modern style while on the go during the cozy season ahead."),
		Price:       ptr(225.0),
		Stock:       ptr(85),
		Sizes:       []string{"XS", "S", "M"},
		Gender:      "women",
		Tags:        []string{"hoodie"},
		Images:      []string{"1740535-00-A_0_2000.jpg", "1740535-00-A_1.jpg"},
	},
	{
		Title:       "Women's Chill Half Zip Cropped Hoodie",
		Description: ptr("Introducing the Tesla Chill Collection. The Women's Chill Half Zip Cropped Hoodie has a premium, soft fleece exterior and cropped silhouette for comfort in everyday lifestyle."),
		Price:       ptr(130.0),
		Stock:       ptr(10),
		Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
		Gender:      "women",
		Tags:        []string{"hoodie"},
		Images:      []string{"1740226-00-A_0_2000.jpg", "1740226-00-A_1.jpg"},
	},
	{
		Title:       "Women's Raven Slouchy Crew Sweatshirt",
		Description: ptr("Introducing the Tesla Raven Collection. The Women's Raven Slouchy Crew Sweatshirt has a premium, relaxed silhouette made from a sustainable bamboo cotton blend."),
		Price:       ptr(110.0),
		Stock:       ptr(9),
		Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
		Gender:      "women",
		Tags:        []string{"hoodie"},
		Images:      []string{"1740260-00-A_0_2000.jpg", "1740260-00-A_1.jpg"},
	},
	{
		Title:       "Kids Cybertruck Long Sleeve Tee",
		Description: ptr("Designed for fit, comfort and style, the Kids Cybertruck Graffiti Long Sleeve Tee features a water-based Cybertruck graffiti wordmark across the chest."),
		Price:       ptr(30.0),
		Stock:       ptr(10),
		Sizes:       []string{"XS", "S", "M"},
		Gender:      "kid",
		Tags:        []string{"shirt"},
		Images:      []string{"1742694-00-A_1_2000.jpg", "1742694-00-A_3.jpg"},
	},
	{
		Title:       "Kids Scribble T Logo Tee",
		Description: ptr("The Kids Scribble T Logo Tee highlights a traditional Tesla T logo with a hand-drawn scribble design."),
		Price:       ptr(25.0),
		Stock:       ptr(0),
		Sizes:       []string{"XS", "S", "M"},
		Gender:      "kid",
		Tags:        []string{"shirt"},
		Images:      []string{"8529312-00-A_0_2000.jpg", "8529312-00-A_1.jpg"},
	},
	{
		Title:       "Made on Earth by Humans Onesie",
		Description: ptr("Show your commitment to sustainable energy with this cheeky onesie for your young one."),
		Price:       ptr(30.0),
		Stock:       ptr(16),
		Sizes:       []string{"XS", "S"},
		Gender:      "kid",
		Tags:        []string{"shirt"},
		Images:      []string{"8529342-00-A_0_2000.jpg", "8529342-00-A_1.jpg"},
	},
	{
		Title:       "Cybertruck Bulletproof Tee",
		Description: ptr("Similar to the Cybertruck's armored glass, this tee is made from 100% cotton and features a unisex fit."),
		Price:       ptr(35.0),
		Stock:       ptr(12),
		Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
		Gender:      "unisex",
		Tags:        []string{"shirt"},
		Images:      []string{"7654399-00-A_0_2000.jpg", "7654399-00-A_1.jpg"},
	},
}

package seed

import "github.com/anuntech/nutrisnap-backend/internal/domain/models"

const imageHost = "https://i.postimg.cc/"

// Foods returns the fixed catalog every installation starts with.
func Foods() []models.FoodItem {
	return []models.FoodItem{
		{
			Id:               "sweet-1",
			Name:             "Apple",
			Category:         models.CategorySweet,
			ImageUrl:         imageHost + "d37F9Qrf/apple.jpg",
			NutritionPer100g: models.Nutrition{Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2},
		},
		{
			Id:               "sweet-2",
			Name:             "Banana",
			Category:         models.CategorySweet,
			ImageUrl:         imageHost + "Kjd2pX58/banana.jpg",
			NutritionPer100g: models.Nutrition{Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3},
		},
		{
			Id:               "sweet-3",
			Name:             "Chocolate Bar (Milk)",
			Category:         models.CategorySweet,
			ImageUrl:         imageHost + "CMtSxDVp/chocolate.jpg",
			NutritionPer100g: models.Nutrition{Calories: 535, Protein: 8, Carbs: 59, Fat: 30},
		},
		{
			Id:               "sweet-4",
			Name:             "Oatmeal Cookie",
			Category:         models.CategorySweet,
			ImageUrl:         imageHost + "28Zmb6zb/oatmealcookie.jpg",
			NutritionPer100g: models.Nutrition{Calories: 450, Protein: 5, Carbs: 65, Fat: 20},
		},
		{
			Id:               "sweet-5",
			Name:             "Orange Juice",
			Category:         models.CategorySweet,
			ImageUrl:         imageHost + "qqzrGs90/orange-juice.jpg",
			NutritionPer100g: models.Nutrition{Calories: 45, Protein: 0.7, Carbs: 10, Fat: 0.2},
		},
		{
			Id:               "veg-1",
			Name:             "Broccoli (steamed)",
			Category:         models.CategoryVegetarian,
			ImageUrl:         imageHost + "pX5xhBfJ/steamed-brocolli.jpg",
			NutritionPer100g: models.Nutrition{Calories: 35, Protein: 2.4, Carbs: 7, Fat: 0.4},
		},
		{
			Id:               "veg-2",
			Name:             "Carrot (raw)",
			Category:         models.CategoryVegetarian,
			ImageUrl:         imageHost + "N0cgwrr7/carrot.jpg",
			NutritionPer100g: models.Nutrition{Calories: 41, Protein: 0.9, Carbs: 10, Fat: 0.2},
		},
		{
			Id:               "veg-3",
			Name:             "White Rice (cooked)",
			Category:         models.CategoryVegetarian,
			ImageUrl:         imageHost + "WzCvYDvZ/white-rice.jpg",
			NutritionPer100g: models.Nutrition{Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3},
		},
		{
			Id:               "veg-4",
			Name:             "Plain Yogurt (Greek)",
			Category:         models.CategoryVegetarian,
			ImageUrl:         imageHost + "5ND4nr4r/greek-yogurt.jpg",
			NutritionPer100g: models.Nutrition{Calories: 59, Protein: 10, Carbs: 3.6, Fat: 0.4},
		},
		{
			Id:               "veg-5",
			Name:             "Almonds (raw)",
			Category:         models.CategoryVegetarian,
			ImageUrl:         imageHost + "jqgdJ5Gt/almonds.jpg",
			NutritionPer100g: models.Nutrition{Calories: 579, Protein: 21, Carbs: 22, Fat: 50},
		},
		{
			Id:               "meat-1",
			Name:             "Chicken Breast (grilled)",
			Category:         models.CategoryMeat,
			ImageUrl:         imageHost + "281jdYDv/chicken-berast.jpg",
			NutritionPer100g: models.Nutrition{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6},
		},
		{
			Id:               "meat-2",
			Name:             "Beef Steak (Sirloin, lean, broiled)",
			Category:         models.CategoryMeat,
			ImageUrl:         imageHost + "rwW8b9zw/beef-steak.jpg",
			NutritionPer100g: models.Nutrition{Calories: 183, Protein: 28, Carbs: 0, Fat: 7},
		},
		{
			Id:               "meat-3",
			Name:             "Salmon Fillet (baked)",
			Category:         models.CategoryMeat,
			ImageUrl:         imageHost + "3RL7pSfn/salmon-fillet.jpg",
			NutritionPer100g: models.Nutrition{Calories: 208, Protein: 20, Carbs: 0, Fat: 13},
		},
		{
			Id:               "meat-4",
			Name:             "Pork Chop (lean, broiled)",
			Category:         models.CategoryMeat,
			ImageUrl:         imageHost + "s243fDYF/pork-chop.jpg",
			NutritionPer100g: models.Nutrition{Calories: 190, Protein: 29, Carbs: 0, Fat: 8},
		},
		{
			Id:               "meat-5",
			Name:             "Turkey Breast (roasted)",
			Category:         models.CategoryMeat,
			ImageUrl:         imageHost + "xj4n1Zzd/turkey-berast.jpg",
			NutritionPer100g: models.Nutrition{Calories: 135, Protein: 30, Carbs: 0, Fat: 1},
		},
	}
}

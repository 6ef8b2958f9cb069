package repository

import "github.com/LINMINXUAN/aphelion-apollo-pos/entity"

// Default catalog installed by either backend when it starts empty. Both
// stores must seed the exact same rows so a fresh instance behaves the same
// regardless of driver.

func seedCategories() []entity.Category {
	return []entity.Category{
		{ID: 1, Name: "主餐", Description: "飽足主食", DisplayOrder: 0},
		{ID: 2, Name: "飲品", Description: "咖啡與茶飲", DisplayOrder: 1},
		{ID: 3, Name: "點心", Description: "輕食甜點", DisplayOrder: 2},
	}
}

func seedProducts() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "招牌蛋堡", Description: "經典早餐，溫暖飽足", Price: 55, CategoryID: 1, Available: true},
		{ID: 2, Name: "熱美式", Description: "香醇濃郁", Price: 45, CategoryID: 2, Available: true},
		{ID: 3, Name: "可頌", Description: "酥香柔軟", Price: 40, CategoryID: 3, Available: true},
	}
}

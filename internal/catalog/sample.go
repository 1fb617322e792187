package catalog

import "menu-kart/internal/model"

func available(id, title string) model.Item {
	return model.Item{ID: id, Title: title, InStock: true}
}

func soldOut(id, title string) model.Item {
	return model.Item{ID: id, Title: title}
}

func section(id, title string, items ...model.Item) model.Section {
	return model.Section{ID: id, Title: title, Items: items}
}

// SampleRestaurants returns the bundled demo catalog. Each call builds a
// fresh value.
func SampleRestaurants() []model.Restaurant {
	return []model.Restaurant{
		{
			ID:       "joes-gelato",
			Name:     "Joe's Gelato",
			Tagline:  "Desert, Ice cream, £££",
			ETA:      "10-30 mins",
			ImageURL: "images/diner.jpg",
			Menu: []model.Section{
				section("gelato", "Gelato",
					available("vanilla", "Vanilla"),
					available("chocolate", "Chocolate"),
					available("strawberry", "Strawberry"),
					available("mint-choc-chip", "Mint Choc Chip"),
				),
				section("sorbet", "Sorbet",
					available("lemon", "Lemon"),
					available("mango", "Mango"),
					available("raspberry", "Raspberry"),
				),
				section("milkshake", "Milkshake",
					soldOut("chocolate", "Chocolate"),
					available("strawberry", "Strawberry"),
					available("banana", "Banana"),
				),
			},
		},
		{
			ID:       "joes-pasta",
			Name:     "Joe's Pasta",
			Tagline:  "Italian, Pasta, £££",
			ETA:      "50 mins",
			ImageURL: "images/vanilla.jpg",
			Menu: []model.Section{
				section("pasta", "Pasta",
					available("spaghetti-bolognese", "Spaghetti Bolognese"),
					available("carbonara", "Carbonara"),
					soldOut("pesto", "Pesto"),
					soldOut("lasagne", "Lasagne"),
				),
				section("pizza", "Pizza",
					available("margherita", "Margherita"),
					soldOut("pepperoni", "Pepperoni"),
					available("vegetarian", "Vegetarian"),
				),
				section("salad", "Salad",
					available("caesar", "Caesar"),
					soldOut("greek", "Greek"),
					available("caprese", "Caprese"),
				),
			},
		},
		{
			ID:       "boost-smoothie",
			Name:     "Boost Smoothie",
			Tagline:  "Fitness Smoothies, £",
			ETA:      "45 mins",
			ImageURL: "images/smoothie.jpg",
			Menu: []model.Section{
				section("fruit-smoothies", "Fruit Smoothies",
					available("strawberry-banana", "Strawberry Banana"),
					available("mango-pineapple", "Mango Pineapple"),
					soldOut("berry-blast", "Berry Blast"),
				),
				section("green-smoothies", "Green Smoothies",
					available("kale-spinach", "Kale Spinach"),
					available("avocado", "Avocado"),
					available("cucumber-mint", "Cucumber Mint"),
				),
				section("protein-smoothies", "Protein Smoothies",
					available("chocolate-protein", "Chocolate Protein"),
					soldOut("peanut-butter", "Peanut Butter"),
					available("vanilla-whey", "Vanilla Whey"),
				),
			},
		},
		{
			ID:       "sushi-haven",
			Name:     "Sushi Haven",
			Tagline:  "Japanese, Sushi, £££",
			ETA:      "30-50 mins",
			ImageURL: "images/sushi.jpg",
			Menu: []model.Section{
				section("sushi-rolls", "Sushi Rolls",
					available("california-roll", "California Roll"),
					available("spicy-tuna-roll", "Spicy Tuna Roll"),
					available("salmon-avocado-roll", "Salmon Avocado Roll"),
				),
				section("nigiri", "Nigiri",
					available("salmon-nigiri", "Salmon Nigiri"),
					available("tuna-nigiri", "Tuna Nigiri"),
					soldOut("eel-nigiri", "Eel Nigiri"),
				),
				section("sashimi", "Sashimi",
					available("salmon-sashimi", "Salmon Sashimi"),
					soldOut("tuna-sashimi", "Tuna Sashimi"),
					available("yellowtail-sashimi", "Yellowtail Sashimi"),
				),
			},
		},
		{
			ID:       "burger-joint",
			Name:     "Burger Joint",
			Tagline:  "American, Burgers, ££",
			ETA:      "20-40 mins",
			ImageURL: "images/burger.jpg",
			Menu: []model.Section{
				section("burgers", "Burgers",
					available("cheeseburger", "Cheeseburger"),
					available("bacon-burger", "Bacon Burger"),
					available("veggie-burger", "Veggie Burger"),
				),
				section("fries", "Fries",
					available("regular-fries", "Regular Fries"),
					soldOut("sweet-potato-fries", "Sweet Potato Fries"),
					available("cheese-fries", "Cheese Fries"),
				),
				section("drinks", "Drinks",
					available("coke", "Coke"),
					available("sprite", "Sprite"),
					available("lemonade", "Lemonade"),
				),
			},
		},
		{
			ID:       "curry-house",
			Name:     "Curry House",
			Tagline:  "Indian, Curry, ££",
			ETA:      "40-60 mins",
			ImageURL: "images/curry.jpg",
			Menu: []model.Section{
				section("curries", "Curries",
					available("chicken-tikka-masala", "Chicken Tikka Masala"),
					available("lamb-vindaloo", "Lamb Vindaloo"),
					available("paneer-butter-masala", "Paneer Butter Masala"),
				),
				section("naan", "Naan",
					available("garlic-naan", "Garlic Naan"),
					available("cheese-naan", "Cheese Naan"),
					available("plain-naan", "Plain Naan"),
				),
				section("sides", "Sides",
					available("samosa", "Samosa"),
					soldOut("pakora", "Pakora"),
					available("raita", "Raita"),
				),
			},
		},
		{
			ID:       "taco-fiesta",
			Name:     "Taco Fiesta",
			Tagline:  "Mexican, Tacos, ££",
			ETA:      "25-45 mins",
			ImageURL: "images/tacos.jpg",
			Menu: []model.Section{
				section("tacos", "Tacos",
					available("beef-taco", "Beef Taco"),
					available("chicken-taco", "Chicken Taco"),
					available("fish-taco", "Fish Taco"),
				),
				section("quesadillas", "Quesadillas",
					available("cheese-quesadilla", "Cheese Quesadilla"),
					available("chicken-quesadilla", "Chicken Quesadilla"),
					available("beef-quesadilla", "Beef Quesadilla"),
				),
				section("sides", "Sides",
					available("chips-salsa", "Chips & Salsa"),
					available("guacamole", "Guacamole"),
					available("corn", "Corn"),
				),
			},
		},
	}
}

package packing

import "github.com/pkordes/packlist/backend/internal/domain"

// The template tables are built once at package init and never written again.
// Every exported accessor hands out copies.

var essentials = []domain.ItemTemplate{
	{Name: "Passport", Category: domain.CategoryDocuments},
	{Name: "Phone Charger", Category: domain.CategoryElectronics},
	{Name: "Toiletries", Category: domain.CategoryPersonalCare},
	{Name: "Travel Insurance", Category: domain.CategoryDocuments},
	{Name: "Power Bank", Category: domain.CategoryElectronics},
	{Name: "First Aid Kit", Category: domain.CategoryHealthSafety},
}

var weatherBands = []domain.Weather{domain.WeatherHot, domain.WeatherMild, domain.WeatherCold}

var weatherItems = map[domain.Weather][]domain.ItemTemplate{
	domain.WeatherHot: {
		{Name: "Sunscreen", Category: domain.CategoryPersonalCare},
		{Name: "Sunglasses", Category: domain.CategoryAccessories},
		{Name: "Hat", Category: domain.CategoryAccessories},
		{Name: "T-shirts", Category: domain.CategoryClothing},
		{Name: "Shorts", Category: domain.CategoryClothing},
		{Name: "Sandals", Category: domain.CategoryFootwear},
		{Name: "Insect Repellent", Category: domain.CategoryPersonalCare},
		{Name: "Light Rain Jacket", Category: domain.CategoryClothing},
	},
	domain.WeatherMild: {
		{Name: "Light Jacket", Category: domain.CategoryClothing},
		{Name: "Long Sleeve Shirts", Category: domain.CategoryClothing},
		{Name: "Pants", Category: domain.CategoryClothing},
		{Name: "Walking Shoes", Category: domain.CategoryFootwear},
		{Name: "Light Sweater", Category: domain.CategoryClothing},
		{Name: "Umbrella", Category: domain.CategoryAccessories},
	},
	domain.WeatherCold: {
		{Name: "Winter Coat", Category: domain.CategoryClothing},
		{Name: "Thermal Underwear", Category: domain.CategoryClothing},
		{Name: "Gloves", Category: domain.CategoryAccessories},
		{Name: "Scarf", Category: domain.CategoryAccessories},
		{Name: "Winter Boots", Category: domain.CategoryFootwear},
		{Name: "Wool Socks", Category: domain.CategoryClothing},
		{Name: "Hand Warmers", Category: domain.CategoryAccessories},
	},
}

// activityOrder is the catalog order presented to users.
var activityOrder = []domain.Activity{
	domain.ActivityBeach,
	domain.ActivityHiking,
	domain.ActivityCityTours,
	domain.ActivityBusiness,
	domain.ActivityWinterSports,
	domain.ActivityCamping,
	domain.ActivityPhotography,
	domain.ActivitySwimming,
	domain.ActivityCycling,
	domain.ActivityCulturalEvents,
	domain.ActivityFineDining,
	domain.ActivityShopping,
	domain.ActivityMuseumVisits,
	domain.ActivityWaterSports,
	domain.ActivityNightlife,
	domain.ActivitySpaWellness,
	domain.ActivityGolf,
	domain.ActivitySafari,
	domain.ActivityRoadTrip,
	domain.ActivityBackpacking,
}

var activityItems = map[domain.Activity][]domain.ItemTemplate{
	domain.ActivityBeach: {
		{Name: "Beach Towel", Category: domain.CategoryBeachGear},
		{Name: "Swimsuit", Category: domain.CategoryClothing},
		{Name: "Beach Umbrella", Category: domain.CategoryBeachGear},
		{Name: "Beach Bag", Category: domain.CategoryAccessories},
		{Name: "Water Shoes", Category: domain.CategoryFootwear},
	},
	domain.ActivityHiking: {
		{Name: "Hiking Boots", Category: domain.CategoryFootwear},
		{Name: "Water Bottle", Category: domain.CategoryEquipment},
		{Name: "First Aid Kit", Category: domain.CategoryHealthSafety},
		{Name: "Hiking Poles", Category: domain.CategoryEquipment},
		{Name: "Trail Map", Category: domain.CategoryEquipment},
		{Name: "Backpack", Category: domain.CategoryEquipment},
	},
	domain.ActivityCityTours: {
		{Name: "Comfortable Walking Shoes", Category: domain.CategoryFootwear},
		{Name: "Day Bag", Category: domain.CategoryAccessories},
		{Name: "Camera", Category: domain.CategoryElectronics},
		{Name: "City Map", Category: domain.CategoryDocuments},
		{Name: "Travel Guide", Category: domain.CategoryDocuments},
	},
	domain.ActivityBusiness: {
		{Name: "Business Suits", Category: domain.CategoryClothing},
		{Name: "Dress Shoes", Category: domain.CategoryFootwear},
		{Name: "Laptop", Category: domain.CategoryElectronics},
		{Name: "Business Cards", Category: domain.CategoryDocuments},
		{Name: "Portable Charger", Category: domain.CategoryElectronics},
	},
	domain.ActivityWinterSports: {
		{Name: "Ski Jacket", Category: domain.CategorySportsGear},
		{Name: "Ski Pants", Category: domain.CategorySportsGear},
		{Name: "Goggles", Category: domain.CategorySportsGear},
		{Name: "Ski Gloves", Category: domain.CategorySportsGear},
		{Name: "Thermal Base Layer", Category: domain.CategoryClothing},
	},
	domain.ActivityCamping: {
		{Name: "Tent", Category: domain.CategoryCampingGear},
		{Name: "Sleeping Bag", Category: domain.CategoryCampingGear},
		{Name: "Flashlight", Category: domain.CategoryEquipment},
		{Name: "Multi-tool", Category: domain.CategoryEquipment},
		{Name: "Camping Stove", Category: domain.CategoryCampingGear},
	},
	domain.ActivityPhotography: {
		{Name: "Camera Body", Category: domain.CategoryPhotographyGear},
		{Name: "Camera Lenses", Category: domain.CategoryPhotographyGear},
		{Name: "Tripod", Category: domain.CategoryPhotographyGear},
		{Name: "Memory Cards", Category: domain.CategoryElectronics},
		{Name: "Camera Bag", Category: domain.CategoryPhotographyGear},
	},
	domain.ActivitySwimming: {
		{Name: "Swimsuit", Category: domain.CategoryClothing},
		{Name: "Goggles", Category: domain.CategorySportsGear},
		{Name: "Swim Cap", Category: domain.CategorySportsGear},
		{Name: "Pool Shoes", Category: domain.CategoryFootwear},
		{Name: "Towel", Category: domain.CategoryPersonalCare},
	},
	domain.ActivityCycling: {
		{Name: "Cycling Shorts", Category: domain.CategorySportsGear},
		{Name: "Cycling Jersey", Category: domain.CategorySportsGear},
		{Name: "Helmet", Category: domain.CategorySafetyGear},
		{Name: "Bike Repair Kit", Category: domain.CategoryEquipment},
		{Name: "Water Bottle", Category: domain.CategoryEquipment},
	},
	domain.ActivityCulturalEvents: {
		{Name: "Smart Casual Outfit", Category: domain.CategoryClothing},
		{Name: "Dress Shoes", Category: domain.CategoryFootwear},
		{Name: "Event Tickets", Category: domain.CategoryDocuments},
		{Name: "Small Purse/Wallet", Category: domain.CategoryAccessories},
	},
	domain.ActivityFineDining: {
		{Name: "Formal Attire", Category: domain.CategoryClothing},
		{Name: "Dress Shoes", Category: domain.CategoryFootwear},
		{Name: "Evening Bag", Category: domain.CategoryAccessories},
		{Name: "Restaurant Reservations", Category: domain.CategoryDocuments},
	},
	domain.ActivityShopping: {
		{Name: "Comfortable Shoes", Category: domain.CategoryFootwear},
		{Name: "Shopping Bags", Category: domain.CategoryAccessories},
		{Name: "Credit Cards", Category: domain.CategoryDocuments},
		{Name: "Shopping List", Category: domain.CategoryDocuments},
	},
	domain.ActivityMuseumVisits: {
		{Name: "Comfortable Shoes", Category: domain.CategoryFootwear},
		{Name: "Light Jacket", Category: domain.CategoryClothing},
		{Name: "Museum Passes", Category: domain.CategoryDocuments},
		{Name: "Small Backpack", Category: domain.CategoryAccessories},
	},
	domain.ActivityWaterSports: {
		{Name: "Wetsuit", Category: domain.CategorySportsGear},
		{Name: "Water Shoes", Category: domain.CategoryFootwear},
		{Name: "Waterproof Bag", Category: domain.CategoryEquipment},
		{Name: "Sports Sunscreen", Category: domain.CategoryPersonalCare},
		{Name: "Quick-dry Towel", Category: domain.CategorySportsGear},
	},
	domain.ActivityNightlife: {
		{Name: "Evening Outfits", Category: domain.CategoryClothing},
		{Name: "Dress Shoes", Category: domain.CategoryFootwear},
		{Name: "ID/Documents", Category: domain.CategoryDocuments},
		{Name: "Small Purse/Wallet", Category: domain.CategoryAccessories},
	},
	domain.ActivitySpaWellness: {
		{Name: "Swimsuit", Category: domain.CategoryClothing},
		{Name: "Flip Flops", Category: domain.CategoryFootwear},
		{Name: "Robe", Category: domain.CategoryClothing},
		{Name: "Spa Reservations", Category: domain.CategoryDocuments},
	},
	domain.ActivityGolf: {
		{Name: "Golf Clubs", Category: domain.CategorySportsGear},
		{Name: "Golf Shoes", Category: domain.CategoryFootwear},
		{Name: "Golf Gloves", Category: domain.CategorySportsGear},
		{Name: "Golf Attire", Category: domain.CategoryClothing},
		{Name: "Tees & Balls", Category: domain.CategorySportsGear},
	},
	domain.ActivitySafari: {
		{Name: "Safari Clothing", Category: domain.CategoryClothing},
		{Name: "Binoculars", Category: domain.CategoryEquipment},
		{Name: "Safari Hat", Category: domain.CategoryAccessories},
		{Name: "Insect Repellent", Category: domain.CategoryPersonalCare},
		{Name: "Camera Equipment", Category: domain.CategoryPhotographyGear},
	},
	domain.ActivityRoadTrip: {
		{Name: "Car Documents", Category: domain.CategoryDocuments},
		{Name: "Road Map/GPS", Category: domain.CategoryEquipment},
		{Name: "Emergency Kit", Category: domain.CategorySafetyGear},
		{Name: "Snacks", Category: domain.CategoryFoodDrinks},
		{Name: "Car Charger", Category: domain.CategoryElectronics},
	},
	domain.ActivityBackpacking: {
		{Name: "Backpack", Category: domain.CategoryEquipment},
		{Name: "Travel Towel", Category: domain.CategoryPersonalCare},
		{Name: "Universal Adapter", Category: domain.CategoryElectronics},
		{Name: "Travel Lock", Category: domain.CategorySafetyGear},
		{Name: "Travel Insurance", Category: domain.CategoryDocuments},
	},
}

// WeatherBands returns the known weather bands in display order.
func WeatherBands() []domain.Weather {
	return append([]domain.Weather(nil), weatherBands...)
}

// Activities returns the activity catalog in display order.
func Activities() []domain.Activity {
	return append([]domain.Activity(nil), activityOrder...)
}

// IsWeather reports whether w is one of the known weather bands.
func IsWeather(w domain.Weather) bool {
	_, ok := weatherItems[w]
	return ok
}

// EssentialTemplates returns a copy of the always-included templates.
func EssentialTemplates() []domain.ItemTemplate {
	return append([]domain.ItemTemplate(nil), essentials...)
}

// WeatherTemplates returns a copy of the templates for w.
// The boolean is false when w is not a known band.
func WeatherTemplates(w domain.Weather) ([]domain.ItemTemplate, bool) {
	t, ok := weatherItems[w]
	if !ok {
		return nil, false
	}
	return append([]domain.ItemTemplate(nil), t...), true
}

// ActivityTemplates returns a copy of the templates for a.
// The boolean is false when a is not in the catalog.
func ActivityTemplates(a domain.Activity) ([]domain.ItemTemplate, bool) {
	t, ok := activityItems[a]
	if !ok {
		return nil, false
	}
	return append([]domain.ItemTemplate(nil), t...), true
}

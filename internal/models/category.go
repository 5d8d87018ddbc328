package models

// Category is the coarse classification assigned to a detected issue.
type Category string

// Recognized issue categories. Anything else is treated as generic.
const (
	CategoryStructural   Category = "Structural"
	CategoryWaterDamage  Category = "Water Damage"
	CategoryWindows      Category = "Windows"
	CategoryRoofing      Category = "Roofing"
	CategoryElectrical   Category = "Electrical"
	CategoryMoldMoisture Category = "Mold/Moisture"
	CategoryHVAC         Category = "HVAC"
	CategoryExterior     Category = "Exterior"
)

// IconKeyDefault is the visual-symbol key used for unrecognized categories.
const IconKeyDefault = "alert-triangle"

// categoryIcons maps each known category to the symbol key the dashboard
// renders next to it.
var categoryIcons = map[Category]string{
	CategoryStructural:   "hammer",
	CategoryWaterDamage:  "droplet",
	CategoryWindows:      "wind",
	CategoryRoofing:      "alert-triangle",
	CategoryElectrical:   "zap",
	CategoryMoldMoisture: "bug",
	CategoryHVAC:         "thermometer",
	CategoryExterior:     "wind",
}

// Known reports whether the category is one of the recognized values.
func (c Category) Known() bool {
	_, ok := categoryIcons[c]
	return ok
}

// IconKey returns the visual-symbol key for the category, falling back to
// IconKeyDefault rather than an empty lookup result.
func (c Category) IconKey() string {
	if key, ok := categoryIcons[c]; ok {
		return key
	}
	return IconKeyDefault
}

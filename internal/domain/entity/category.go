package entity

// AllCategories is the pseudo-category that disables category filtering
const AllCategories = "الكل"

// Category is a flat offer category; its name is the filter key
type Category struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var categoryIcons = map[string]string{
	"مطاعم":           "restaurant",
	"مقاهي":           "coffee",
	"مواد غذائية":     "shopping-basket",
	"ملابس":           "tshirt",
	"أجهزة إلكترونية": "devices",
}

// IconHint returns the explicit icon hint, or one derived from the category name
func (c Category) IconHint() string {
	if c.Icon != "" {
		return c.Icon
	}
	if icon, ok := categoryIcons[c.Name]; ok {
		return icon
	}

	return "category"
}

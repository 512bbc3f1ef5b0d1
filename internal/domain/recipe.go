package domain

// BlendRecipe consumes a fixed multiset of input templates and mints one
// asset of the output template. Recipes are admin-created and immutable.
type BlendRecipe struct {
	BlendID        int64   `json:"blend_id" db:"blend_id"`
	Components     []int32 `json:"components" db:"components"`
	OutputTemplate int32   `json:"output_template" db:"output_template"`
}

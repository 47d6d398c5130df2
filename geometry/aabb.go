package geometry

// AABB is an axis-aligned bounding box in R^2, used to describe a
// client's region of interest (spec §6 RegisterInterest payload).
type AABB struct {
	XMin float32 `json:"x_min"`
	XMax float32 `json:"x_max"`
	YMin float32 `json:"y_min"`
	YMax float32 `json:"y_max"`
}

// Contains reports whether p lies within the closed box.
func (b AABB) Contains(p Vector2) bool {
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

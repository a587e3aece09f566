package engine

// GroupID tags entities with a logical category for group-scoped iteration
type GroupID uint8

func checkGroup(op string, g GroupID) {
	if int(g) >= MaxGroups {
		violate(op, "group %d out of range (max %d)", g, MaxGroups)
	}
}

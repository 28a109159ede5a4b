package domain

// Role checks are deliberately exact: an admin does not implicitly satisfy an
// instructor-only gate. Routes that want both roles must list both.

// HasRole reports whether the identity carries exactly the given role.
func HasRole(id Identity, role string) bool {
	return id.Role == role
}

// OwnerOrRole reports whether the identity owns the resource or carries the
// given role.
func OwnerOrRole(id Identity, ownerID, role string) bool {
	return id.ID == ownerID || id.Role == role
}

// CanDeleteResource is the deletion policy for owned resources: the creator
// may delete their own, and an admin may delete anyone's.
func CanDeleteResource(id Identity, ownerID string) bool {
	return OwnerOrRole(id, ownerID, RoleAdmin)
}

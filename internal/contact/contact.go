package contact

// Contact represents an entry in the `contacts` table. All fields are plain
// strings; no format validation is applied to phone or email.
type Contact struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// UpdateRequest carries a partial update. Pointer fields distinguish "absent"
// from "set to empty string": only fields present in the request body
// overwrite the stored value.
type UpdateRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

// ApplyTo merges the request onto an existing contact. The id is never
// touched.
func (r UpdateRequest) ApplyTo(c Contact) Contact {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Phone != nil {
		c.Phone = *r.Phone
	}
	if r.Email != nil {
		c.Email = *r.Email
	}
	if r.Address != nil {
		c.Address = *r.Address
	}
	return c
}

package handlers

// CreateProductRequest carries the default-language product content and the
// target language codes. Pointer fields distinguish absent from empty so the
// validator can report every violated rule.
type CreateProductRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Language    *[]string `json:"language"`
}

// Validate returns every violated field rule in field declaration order, or
// nil when the request is well-formed.
func (r *CreateProductRequest) Validate() []string {
	var violations []string

	switch {
	case r.Name == nil:
		violations = append(violations,
			"name should not be empty",
			"name must be a string",
		)
	case *r.Name == "":
		violations = append(violations, "name should not be empty")
	}

	switch {
	case r.Description == nil:
		violations = append(violations,
			"description should not be empty",
			"description must be a string",
		)
	case *r.Description == "":
		violations = append(violations, "description should not be empty")
	}

	switch {
	case r.Language == nil:
		violations = append(violations,
			"language should not be empty",
			"language must be an array",
		)
	case len(*r.Language) == 0:
		violations = append(violations, "language should not be empty")
	}

	return violations
}

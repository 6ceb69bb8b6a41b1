package account

// Request is shared by create and update. Pointers keep the distinction
// between a field absent from the payload and a field explicitly set to a
// value (updates treat nil as "leave unchanged").
type (
	Request struct {
		Name     *string `json:"name"`
		CPF      *string `json:"cpf"`
		Email    *string `json:"email"`
		Phone    *string `json:"phone"`
		Address  *string `json:"address"`
		Password *string `json:"password"`
	}
	// DeleteRequest is the optional body of a delete call, recording who
	// performed the deletion.
	DeleteRequest struct {
		DeletedBy *uint64 `json:"deleted_by"`
	}
)

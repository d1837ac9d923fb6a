package department

type DepartmentResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Open  string `json:"open_time"`
	Close string `json:"close_time"`
}

func (d Department) ToResponse() DepartmentResponse {
	return DepartmentResponse{
		ID:    d.ID,
		Name:  d.Name,
		Open:  d.Open.String(),
		Close: d.Close.String(),
	}
}

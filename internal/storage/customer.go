package storage

type Customer struct {
	ID       int64   `json:"id"`
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Phone    *string `json:"phone"`
	LineID   *string `json:"line_id"`
	Email    *string `json:"email"`
	Address  *string `json:"address"`
	Note     *string `json:"note"`
	IsActive bool    `json:"is_active"`
}

package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type ShopRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	ManagerName string `json:"manager_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Status      string `json:"status"`
}

func (req *ShopRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Location, validation.Length(0, 300)),
		validation.Field(&req.ManagerName, validation.Length(0, 100)),
		validation.Field(&req.Phone, validation.Length(0, 20)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Status, validation.In("Active", "Inactive")),
	)
}

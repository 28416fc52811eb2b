package api

// UpdateConfigRequest is the body of PUT /config. Password is optional; an
// empty value keeps the stored credential. ConfigID is parsed separately so
// copier only maps the plain fields.
type UpdateConfigRequest struct {
	ConfigID   string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
	Address    string `json:"address"`
	NIT        string `json:"nit"`
	ImgLogo    string `json:"imgLogo"`
	MsgSoldOut string `json:"msgSoldOut"`
	MsgSale    string `json:"msgSale"`
	MsgThanks  string `json:"msgThanks"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

package settings

import (
	"time"

	"github.com/google/uuid"
	"github.com/tendant/century-shop/pkg/notification"
)

// SystemConfig is the single row of store-wide settings. Email and Password
// are the credentials of the mailbox every shop email is sent from.
type SystemConfig struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Password   string    `json:"-"`
	Address    string    `json:"address"`
	NIT        string    `json:"nit"`
	ImgLogo    string    `json:"imgLogo"`
	MsgSoldOut string    `json:"msgSoldOut"`
	MsgSale    string    `json:"msgSale"`
	MsgThanks  string    `json:"msgThanks"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// MailAccount returns the outbound mail account held by the config
func (c SystemConfig) MailAccount() notification.Account {
	return notification.Account{Address: c.Email, Password: c.Password}
}

// DefaultSystemConfig is written the first time the configuration is read
func DefaultSystemConfig() SystemConfig {
	return SystemConfig{
		Name:       "century",
		Email:      "ejemplo@email.com",
		Phone:      "12345678",
		Password:   "pass",
		Address:    "Guatemala",
		NIT:        "000000000",
		ImgLogo:    "logo",
		MsgSoldOut: "Agotado!",
		MsgSale:    "Ultimas unidades",
		MsgThanks:  "Gracias por comprar con nosotros!",
	}
}

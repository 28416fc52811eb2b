package api

// SendLinkRequest is the body of POST /verify
type SendLinkRequest struct {
	Email   string `json:"email"`
	Captcha string `json:"captcha"`
}

// SendLinkResponse reports whether the confirmation email went out
type SendLinkResponse struct {
	Sent    bool   `json:"sent"`
	Message string `json:"message"`
}

// VerifyTokenResponse reports whether a token is valid and for which email
type VerifyTokenResponse struct {
	Valid   bool   `json:"valid"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message,omitempty"`
}

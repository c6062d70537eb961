package response

type OTPResponse struct {
	OK      bool   `json:"ok"`
	DevCode string `json:"devCode,omitempty"`
}

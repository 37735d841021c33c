package response

const PaymentStatusSuccess = "success"

type PaymentResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewPaymentResponse(message string) PaymentResponse {
	return PaymentResponse{Status: PaymentStatusSuccess, Message: message}
}

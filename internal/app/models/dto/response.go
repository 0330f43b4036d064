package dto

// APIResponse is the standard success envelope: {status, results?, token?, data}.
type APIResponse struct {
	Status  string      `json:"status" example:"success"`
	Results *int        `json:"results,omitempty" example:"12"`
	Token   string      `json:"token,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the standard error envelope: {status, message}.
// Status is "fail" for client errors and "error" for server errors.
type ErrorResponse struct {
	Status  string `json:"status" example:"fail"`
	Message string `json:"message" example:"No student found with that ID"`
}

// NewSuccessResponse creates a success envelope around data.
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Status: "success",
		Data:   data,
	}
}

// NewListResponse creates a success envelope with a result count.
func NewListResponse(results int, data interface{}) APIResponse {
	return APIResponse{
		Status:  "success",
		Results: &results,
		Data:    data,
	}
}

// NewErrorResponse creates an error envelope. Client errors (4xx) report
// "fail", everything else "error".
func NewErrorResponse(statusCode int, message string) ErrorResponse {
	status := "error"
	if statusCode >= 400 && statusCode < 500 {
		status = "fail"
	}
	return ErrorResponse{
		Status:  status,
		Message: message,
	}
}

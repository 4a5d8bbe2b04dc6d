package dto

// StatusResponse is the {success, message} envelope every mutation
// endpoint returns. The shape is part of the wire contract with the
// portal frontend.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse carries a failure without the success envelope, used
// where the frontend only inspects the status code.
type ErrorResponse struct {
	Error string `json:"error"`
}

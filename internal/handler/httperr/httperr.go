package httperr

// Response is the error envelope every endpoint emits: a flat message
// under the "error" key.
type Response struct {
	Error string `json:"error"`
}

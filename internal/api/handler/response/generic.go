package response

type APIError struct {
	Message string `json:"message"`
}

type Message struct {
	Message string `json:"message"`
}

type Count struct {
	Count int64 `json:"count"`
}

type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

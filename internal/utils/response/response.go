package response

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope for every non-GET reply and every error.
type Response struct {
	Message string `json:"message"`
}

const MessageSuccess = "SUCCESS"

func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(data)
}

func GeneralError(err error) Response {
	return Response{Message: err.Error()}
}

func Message(msg string) Response {
	return Response{Message: msg}
}

func Success() Response {
	return Response{Message: MessageSuccess}
}

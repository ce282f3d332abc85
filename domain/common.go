package domain

var (
	MessageFailedBodyRequest = "failed to parse request body"
)

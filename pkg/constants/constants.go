package constants

const (
	StatusOK = "ok"

	// HeaderUserID carries the acting user id, set by the gateway after
	// token validation. The service never reads tokens itself.
	HeaderUserID = "X-User-Id"

	MsgUploadInitiated = "Video upload initiated successfully"
)

package handler

const (
	// RootPath is the root path the route group.
	RootPath = "/"

	// APIPath is the prefix of the versioned JSON api.
	APIPath = RootPath + "api/v1/"

	// ErrNilACTFatalLogMsg is used if app, cfg or the ticket service is nil.
	ErrNilACTFatalLogMsg = "app, cfg or ticket service is nil"
)

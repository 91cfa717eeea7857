package constant

import "time"

const (
	QUERY_TIMEOUT_DURATION = 10 * time.Second

	REQUEST_SUCCESSFUL   = "Request successful"
	REQUEST_UNSUCCESSFUL = "Request unsuccessful"

	DefaultPageSize = 20
	MaxPageSize     = 100

	JWT_TYPE_ACCESS  = "access"
	JWT_TYPE_REFRESH = "refresh"

	OAUTH_PROVIDER_GOOGLE = "google"

	// Name of the atomic sequence used for serial/drawing numbering.
	COUNTER_DOOR_SERIAL = "door_serial"
)

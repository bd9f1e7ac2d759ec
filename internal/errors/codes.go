package errors

// Code classifies a failure so transports can map it without parsing messages
type Code string

// Codes raised by the configurator. Each one maps onto a gRPC status code in GRPCCode.
const (
	// CodeInvalidArgument covers unknown slots, star counts and malformed ids
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	// CodeNotFound covers sessions, saved builds, catalog items and catalog files
	CodeNotFound Code = "NOT_FOUND"
	// CodeAlreadyExists is returned when a saved build id is reused
	CodeAlreadyExists Code = "ALREADY_EXISTS"
	// CodePermissionDenied is returned when a session or build belongs to another owner
	CodePermissionDenied Code = "PERMISSION_DENIED"
	// CodeFailedPrecondition covers catalogs that fail validation and empty builds
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	// CodeInternal is the fallback for errors that carry no code
	CodeInternal Code = "INTERNAL"
	// CodeUnavailable is returned when postgres or redis cannot be reached
	CodeUnavailable Code = "UNAVAILABLE"
)

func (c Code) String() string {
	return string(c)
}

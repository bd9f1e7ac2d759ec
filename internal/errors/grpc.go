package errors

import (
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain identifies errors raised by this service in gRPC error details
const ErrorDomain = "general-configurator"

// ToGRPCError converts an error to a gRPC status error
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	// Check if it's already a gRPC status error
	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if len(customErr.Meta) > 0 {
		details := &errdetails.ErrorInfo{
			Reason:   string(customErr.Code),
			Domain:   ErrorDomain,
			Metadata: stringifyMeta(customErr.Meta),
		}
		if withDetails, err := st.WithDetails(details); err == nil {
			st = withDetails
		}
	}
	return st.Err()
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeInvalidArgument:
		return codes.InvalidArgument
	case CodeNotFound:
		return codes.NotFound
	case CodeAlreadyExists:
		return codes.AlreadyExists
	case CodePermissionDenied:
		return codes.PermissionDenied
	case CodeFailedPrecondition:
		return codes.FailedPrecondition
	case CodeInternal:
		return codes.Internal
	case CodeUnavailable:
		return codes.Unavailable
	default:
		return codes.Unknown
	}
}

// stringifyMeta flattens error metadata into the string map carried by ErrorInfo
func stringifyMeta(meta map[string]interface{}) map[string]string {
	out := make(map[string]string, len(meta))
	for k, v := range meta {
		out[k] = fmt.Sprint(v)
	}
	return out
}

// Package errors carries coded failures from the repositories and the
// configurator orchestrator out to the gRPC and live transports.
//
// Every error the service layer returns is an *Error with a Code, a message
// that is safe to show a client, an optional cause and optional metadata:
//
//	err := errors.NotFoundf("build %s not found", id).
//	    WithMeta("owner_id", ownerID)
//
// Wrap keeps the code of the error it wraps. WrapWithCode replaces it, which
// is how store failures become CodeUnavailable:
//
//	if err := rdb.Ping(ctx).Err(); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeUnavailable, "redis: ping failed")
//	}
//
// Callers branch with the Is helpers (IsNotFound, IsInvalidArgument and so
// on). An error with no code counts as internal.
//
// Input checks accumulate field messages in a ValidationBuilder and return a
// single InvalidArgument carrying them under the "validation_errors" meta key:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", item.Name, vb)
//	errors.ValidateRange("pieces", bonus.Pieces, 2, 6, vb)
//	return vb.Build()
//
// Handlers hand results to ToGRPCError, which picks the status code from
// Code.GRPCCode and attaches metadata as a google.rpc.ErrorInfo detail in
// ErrorDomain.
package errors

// Package errors provides the structured error type used across strat-dex.
//
// Every error carries a Code, a human readable message, an optional cause and
// optional metadata:
//
//	err := errors.InvalidArgumentf("unknown generation code %q", code).
//	    WithMeta("code", code)
//
// Wrapping keeps the code of an existing *Error, otherwise the result is INTERNAL:
//
//	if err := client.GetBasics(ctx, gen); err != nil {
//	    return errors.Wrap(err, "failed to fetch basics")
//	}
//
// Use WrapWithCode to change the semantics of a lower level failure:
//
//	return errors.WrapWithCode(err, errors.CodeUnavailable, "dump-pokemon request failed")
//
// # Domain error kinds
//
// The dex client and the randomizer express their failure kinds with codes:
//   - INVALID_ARGUMENT: unknown generation code, bad config
//   - UNAVAILABLE: a remote fetch failed (transport, status or decode)
//   - FAILED_PRECONDITION: no standard pokemon exist for the generation
//   - RESOURCE_EXHAUSTED: the randomizer ran out of attempts
//   - CANCELED: the caller's context ended mid-loop
//
// Config validation collects field errors with the ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Client == nil {
//	    vb.RequiredField("Client")
//	}
//	return vb.Build()
package errors

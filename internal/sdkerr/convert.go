package sdkerr

import (
	"context"
	stderrors "errors"
	"net"
	"net/url"
)

// Convertible is implemented by collaborator failure types that know their own mapping.
type Convertible interface {
	SDKError() Error
}

// Adapt returns the Error already in err's chain, or the mapping of a
// Convertible in the chain, or fallback(err). err must be non-nil.
//
//	if err != nil {
//	    return sdkerr.Adapt(err, sdkerr.FromInvoiceParseFailure)
//	}
func Adapt(err error, fallback func(error) Error) Error {
	if mapped, ok := known(err); ok {
		return mapped
	}
	return fallback(err)
}

// Convert maps err onto the taxonomy when its type is known. It reports false for
// nil and for failures no adapter recognises.
//
// A bare *url.Error with Op "parse" is routed to FromURLParseFailure and panics.
func Convert(err error) (Error, bool) {
	if err == nil {
		return nil, false
	}
	if mapped, ok := known(err); ok {
		return mapped, true
	}

	var sc StatusCarrier
	if stderrors.As(err, &sc) {
		return FromTransportFailure(err), true
	}

	var urlErr *url.Error
	if stderrors.As(err, &urlErr) && urlErr.Op == "parse" {
		return FromURLParseFailure(err), true
	}

	var netErr net.Error
	switch {
	case urlErr != nil,
		stderrors.As(err, &netErr),
		stderrors.Is(err, context.DeadlineExceeded),
		stderrors.Is(err, context.Canceled):
		return FromTransportFailure(err), true
	}

	return nil, false
}

func known(err error) (Error, bool) {
	var sdkErr Error
	if stderrors.As(err, &sdkErr) {
		return sdkErr, true
	}
	var conv Convertible
	if stderrors.As(err, &conv) {
		if mapped := conv.SDKError(); mapped != nil {
			return mapped, true
		}
	}
	return nil, false
}

// Package lnurl decodes and validates LNURL-pay and LNURL-withdraw service
// responses.
//
// Every function reports failures as an sdkerr.Error so callers never see a
// decoder or validator error directly. Pay request problems become
// PayRequestValidationError, IV problems become PayRequestIVDecodeError,
// withdraw request problems become WithdrawRequestValidationError and an
// unreadable withdraw callback becomes WithdrawCallbackParsingError.
//
// A service may answer any request with {"status":"ERROR","reason":"..."};
// the reason is surfaced as the validation message of the request being parsed.
package lnurl

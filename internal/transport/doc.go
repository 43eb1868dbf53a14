// Package transport is the HTTP client used to reach LNURL services.
//
// Every failure is returned as *Error. Errors from a completed exchange carry
// the HTTP status and a bounded snippet of the response body; connection and
// timeout failures carry status 0. *Error implements HTTPStatus, which is how
// the error taxonomy tells the two apart.
//
// # Usage
//
//	c, err := transport.New(transport.Config{Timeout: 10 * time.Second})
//	if err != nil {
//	    return err
//	}
//	resp, err := c.Get(ctx, "https://service.example/lnurlp/alice", nil)
package transport
